package account

import (
	"context"
	"strings"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

// Delete removes an account. Idempotent: deleting a missing account succeeds.
func (s *Service) Delete(ctx context.Context, accountID string) error {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return domain.ErrMissingField("account_id")
	}
	return s.accounts.Delete(ctx, accountID)
}
