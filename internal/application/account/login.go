package account

import (
	"context"
	"strings"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

// Login authenticates a caller and returns the account identity.
// Rejections, in priority order: email_not_found, incorrect_password,
// not_verified. The password is compared before the verification check so
// verification state is never revealed to a caller who does not know the
// password. An unverified account never authenticates, correct password or
// not.
func (s *Service) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.Identity{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return domain.Identity{}, domain.ErrMissingField("password")
	}

	a, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if domain.Is(err, "account_not_found") {
			return domain.Identity{}, domain.ErrEmailNotFound()
		}
		return domain.Identity{}, err
	}

	// A corrupted stored hash also lands here: it is a failed comparison,
	// never a fall back to plaintext equality.
	if err := s.hasher.Compare(a.PasswordHash, password); err != nil {
		return domain.Identity{}, domain.ErrIncorrectPassword()
	}

	if !a.IsVerified {
		return domain.Identity{}, domain.ErrNotVerified()
	}

	return domain.Identity{
		ID:    a.AccountID,
		Email: a.Email,
		Role:  a.AccountType,
	}, nil
}
