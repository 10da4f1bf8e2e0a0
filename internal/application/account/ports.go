package account

import (
	"context"
	"time"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

/*
AccountRepo
-----------
Persistence port for accounts. Only describes WHAT the account service
needs, not HOW it's stored. The store owns the atomicity guarantees:
Create resolves duplicate races through its unique constraints, and
ConsumeVerification checks and consumes the code in one atomic write.
*/
type AccountRepo interface {
	Create(ctx context.Context, a domain.Account) error
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
	GetByAccountID(ctx context.Context, accountID string) (domain.Account, error)

	// ConsumeVerification atomically flips an unverified account to verified
	// and clears code+expiry. Rejections, in priority order:
	// account_not_found, code_expired, code_mismatch.
	ConsumeVerification(ctx context.Context, accountID, code string, now time.Time) error

	// UpdateVerification overwrites code+expiry for an unverified account
	// (the resend path).
	UpdateVerification(ctx context.Context, accountID, code string, expiry time.Time) error

	// Delete is idempotent: removing a missing account is not an error.
	Delete(ctx context.Context, accountID string) error
}

/*
PasswordHasher
--------------
Abstracts bcrypt. Compare returns nil on match and must fail closed on a
corrupted stored hash.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

/*
CodeGenerator
-------------
Issues one-time verification codes with their expiry instant.
*/
type CodeGenerator interface {
	Generate() (code string, expiry time.Time, err error)
}

/*
Notifier
--------
Outbound delivery of the verification code. Callers treat failures as
non-fatal: the account is already committed when Send runs.
*/
type Notifier interface {
	Send(ctx context.Context, toEmail, subject, body string) error
}
