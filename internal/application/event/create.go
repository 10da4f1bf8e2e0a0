package event

import (
	"context"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

// Create validates and persists a new event, returning its ID. Access
// defaults to Public when unset.
func (s *Service) Create(ctx context.Context, e domain.Event) (int64, error) {
	if e.Access == "" {
		e.Access = domain.AccessPublic
	}
	if !e.IsPriced {
		e.Cost = nil
	}
	if err := e.Validate(); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, e)
}
