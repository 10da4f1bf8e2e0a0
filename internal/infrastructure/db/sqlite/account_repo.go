package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// ---------- helpers ----------

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type accountRow struct {
	AccountID    string
	AccountType  string
	Email        string
	PasswordHash string
	IsVerified   bool
	Code         sql.NullString
	Expiry       sql.NullInt64
	CreatedAt    time.Time
}

func scanAccountRow(row *sql.Row) (accountRow, error) {
	var ar accountRow
	err := row.Scan(
		&ar.AccountID,
		&ar.AccountType,
		&ar.Email,
		&ar.PasswordHash,
		&ar.IsVerified,
		&ar.Code,
		&ar.Expiry,
		&ar.CreatedAt,
	)
	return ar, err
}

func toDomainAccount(ar accountRow) domain.Account {
	a := domain.Account{
		AccountID:    ar.AccountID,
		AccountType:  ar.AccountType,
		Email:        ar.Email,
		PasswordHash: ar.PasswordHash,
		IsVerified:   ar.IsVerified,
		CreatedAt:    ar.CreatedAt,
	}
	if ar.Code.Valid {
		code := ar.Code.String
		a.VerificationCode = &code
	}
	if ar.Expiry.Valid {
		exp := time.Unix(ar.Expiry.Int64, 0).UTC()
		a.VerificationExpiry = &exp
	}
	return a
}

func mapConstraintErr(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "accounts.email"):
		return domain.ErrDuplicateEmail()
	case strings.Contains(msg, "accounts.account_id"):
		return domain.ErrDuplicateAccountID()
	case strings.Contains(msg, "unique constraint"):
		return domain.ErrDuplicateAccountID()
	default:
		return domain.ErrDBUnavailable(err)
	}
}

const accountCols = `account_id, account_type, email, password_hash, is_verified, verification_code, verification_expiry, created_at`

// ---------- account.AccountRepo ----------

func (r *AccountRepo) Create(ctx context.Context, a domain.Account) error {
	a.Email = normalizeEmail(a.Email)
	if a.AccountID == "" {
		return domain.ErrMissingField("user_id")
	}
	if a.Email == "" {
		return domain.ErrMissingField("email")
	}
	if a.PasswordHash == "" {
		return domain.ErrMissingField("password_hash")
	}

	var code sql.NullString
	if a.VerificationCode != nil {
		code = sql.NullString{String: *a.VerificationCode, Valid: true}
	}
	var expiry sql.NullInt64
	if a.VerificationExpiry != nil {
		expiry = sql.NullInt64{Int64: a.VerificationExpiry.Unix(), Valid: true}
	}

	const q = `
INSERT INTO accounts (account_id, account_type, email, password_hash, is_verified, verification_code, verification_expiry)
VALUES (?,?,?,?,?,?,?);
`
	_, err := r.db.ExecContext(ctx, q,
		a.AccountID, a.AccountType, a.Email, a.PasswordHash, a.IsVerified, code, expiry,
	)
	if err != nil {
		return mapConstraintErr(err)
	}
	return nil
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	email = normalizeEmail(email)
	if email == "" {
		return domain.Account{}, domain.ErrMissingField("email")
	}

	const q = `SELECT ` + accountCols + ` FROM accounts WHERE email = ? LIMIT 1;`
	ar, err := scanAccountRow(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrAccountNotFound()
		}
		return domain.Account{}, domain.ErrDBUnavailable(err)
	}
	return toDomainAccount(ar), nil
}

func (r *AccountRepo) GetByAccountID(ctx context.Context, accountID string) (domain.Account, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return domain.Account{}, domain.ErrMissingField("user_id")
	}

	const q = `SELECT ` + accountCols + ` FROM accounts WHERE account_id = ? LIMIT 1;`
	ar, err := scanAccountRow(r.db.QueryRowContext(ctx, q, accountID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrAccountNotFound()
		}
		return domain.Account{}, domain.ErrDBUnavailable(err)
	}
	return toDomainAccount(ar), nil
}

// ConsumeVerification flips an account to verified with one conditional
// write; the check and the consume cannot be split by a concurrent verify,
// so a racer that loses gets the domain rejection, not a write conflict.
// Rejection order: account_not_found, code_expired, code_mismatch. A row
// that is already verified carries no code, so a replay lands on mismatch.
func (r *AccountRepo) ConsumeVerification(ctx context.Context, accountID, code string, now time.Time) error {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return domain.ErrMissingField("user_id")
	}

	const upd = `
UPDATE accounts
SET is_verified = 1, verification_code = NULL, verification_expiry = NULL
WHERE account_id = ? AND is_verified = 0
  AND verification_code = ? AND verification_expiry > ?;
`
	res, err := r.db.ExecContext(ctx, upd, accountID, code, now.Unix())
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	if n > 0 {
		return nil
	}

	// Zero rows: read the current state to report why.
	var stored sql.NullString
	var expiry sql.NullInt64
	const sel = `SELECT verification_code, verification_expiry FROM accounts WHERE account_id = ?;`
	err = r.db.QueryRowContext(ctx, sel, accountID).Scan(&stored, &expiry)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrAccountNotFound()
		}
		return domain.ErrDBUnavailable(err)
	}
	if stored.Valid && expiry.Valid && !now.Before(time.Unix(expiry.Int64, 0)) {
		return domain.ErrCodeExpired()
	}
	return domain.ErrCodeMismatch()
}

func (r *AccountRepo) UpdateVerification(ctx context.Context, accountID, code string, expiry time.Time) error {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return domain.ErrMissingField("user_id")
	}

	const q = `
UPDATE accounts
SET verification_code = ?, verification_expiry = ?
WHERE account_id = ? AND is_verified = 0;
`
	res, err := r.db.ExecContext(ctx, q, code, expiry.Unix(), accountID)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		// Either no such account or it is already verified.
		var verified bool
		const sel = `SELECT is_verified FROM accounts WHERE account_id = ?;`
		err := r.db.QueryRowContext(ctx, sel, accountID).Scan(&verified)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrAccountNotFound()
		}
		if err != nil {
			return domain.ErrDBUnavailable(err)
		}
		return domain.ErrAlreadyVerified()
	}
	return nil
}

// Delete removes the account row. Missing rows are not an error.
func (r *AccountRepo) Delete(ctx context.Context, accountID string) error {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return domain.ErrMissingField("user_id")
	}

	const q = `DELETE FROM accounts WHERE account_id = ?;`
	if _, err := r.db.ExecContext(ctx, q, accountID); err != nil {
		return domain.ErrDBUnavailable(err)
	}
	return nil
}

// ---------- event.RoleDirectory ----------

func (r *AccountRepo) RoleOf(ctx context.Context, accountID string) (string, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return "", domain.ErrMissingField("user_id")
	}

	const q = `SELECT account_type FROM accounts WHERE account_id = ? LIMIT 1;`
	var role string
	err := r.db.QueryRowContext(ctx, q, accountID).Scan(&role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrAccountNotFound()
		}
		return "", domain.ErrDBUnavailable(err)
	}
	return role, nil
}
