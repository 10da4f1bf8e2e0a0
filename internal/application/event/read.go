package event

import (
	"context"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

// Get fetches one event. Inactive (soft-deleted) events are hidden unless
// includeInactive is set.
func (s *Service) Get(ctx context.Context, id int64, includeInactive bool) (domain.Event, error) {
	return s.repo.GetByID(ctx, id, includeInactive)
}

// List returns events ordered chronologically by start time, excluding
// Inactive ones by default.
func (s *Service) List(ctx context.Context, includeInactive bool) ([]domain.Event, error) {
	return s.repo.List(ctx, includeInactive)
}

// Search filters the active events by optional title/description substring,
// category, and start-time window.
func (s *Service) Search(ctx context.Context, f SearchFilter) ([]domain.Event, error) {
	return s.repo.Search(ctx, f)
}
