package account

import (
	"context"
	"strings"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

// Verify consumes a verification code. On success the account is atomically
// marked verified and the code+expiry are cleared, so a second call with the
// same code reports code_mismatch (no code exists to match any more).
func (s *Service) Verify(ctx context.Context, accountID, code string) error {
	accountID = strings.TrimSpace(accountID)
	code = strings.TrimSpace(code)
	if accountID == "" {
		return domain.ErrMissingField("account_id")
	}
	if code == "" {
		return domain.ErrMissingField("code")
	}

	return s.accounts.ConsumeVerification(ctx, accountID, code, s.now())
}

// ResendCode regenerates the verification code and expiry for an unverified
// account, overwriting whatever was pending, and re-sends the notification.
func (s *Service) ResendCode(ctx context.Context, accountID string) (string, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return "", domain.ErrMissingField("account_id")
	}

	a, err := s.accounts.GetByAccountID(ctx, accountID)
	if err != nil {
		return "", err
	}
	if a.IsVerified {
		return "", domain.ErrAlreadyVerified()
	}

	code, expiry, err := s.codes.Generate()
	if err != nil {
		return "", err
	}
	if err := s.accounts.UpdateVerification(ctx, accountID, code, expiry); err != nil {
		return "", err
	}

	s.notifyCode(ctx, a.Email, code)
	return code, nil
}
