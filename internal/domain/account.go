package domain

import "time"

// Account is the registration/verification record. AccountID is the
// caller-supplied external identifier; the storage primary key stays internal.
//
// Invariant: VerificationCode and VerificationExpiry are either both nil or
// both set. A verified account always has both nil.
type Account struct {
	AccountID    string
	AccountType  string
	Email        string
	PasswordHash string

	IsVerified         bool
	VerificationCode   *string
	VerificationExpiry *time.Time

	CreatedAt time.Time
}

// Identity is what a successful login returns.
type Identity struct {
	ID    string
	Email string
	Role  string
}
