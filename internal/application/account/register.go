package account

import (
	"context"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

// Register creates an unverified account and returns the verification code.
// The code is primarily for test harnesses and fallback display; the normal
// channel is the notifier. Duplicate emails (including concurrent
// registrations racing on the same email) surface as duplicate_email via the
// store's unique constraint.
func (s *Service) Register(ctx context.Context, accountID, accountType, password, email string) (string, error) {
	if accountID == "" {
		return "", domain.ErrMissingField("account_id")
	}
	if accountType == "" {
		return "", domain.ErrMissingField("account_type")
	}
	if password == "" {
		return "", domain.ErrMissingField("password")
	}
	if email == "" {
		return "", domain.ErrMissingField("email")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	code, expiry, err := s.codes.Generate()
	if err != nil {
		return "", err
	}

	a := domain.Account{
		AccountID:          accountID,
		AccountType:        accountType,
		Email:              email,
		PasswordHash:       hash,
		IsVerified:         false,
		VerificationCode:   &code,
		VerificationExpiry: &expiry,
	}
	if err := s.accounts.Create(ctx, a); err != nil {
		return "", err
	}

	s.notifyCode(ctx, email, code)
	return code, nil
}
