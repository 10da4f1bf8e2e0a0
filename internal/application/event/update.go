package event

import (
	"context"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

// Update applies a partial update. Authorized when the updater is the
// event's creator or a Faculty account. Only whitelisted fields can change;
// touched fields are validated against the same rules create uses.
func (s *Service) Update(ctx context.Context, eventID int64, updaterID string, upd Update) error {
	if updaterID == "" {
		return domain.ErrMissingField("updater_id")
	}
	if upd.Empty() {
		return domain.ErrInvalidField("update", "no fields to update")
	}
	if upd.Type != nil && !domain.IsValidEventType(*upd.Type) {
		return domain.ErrInvalidField("event_type", "not an allowed event type")
	}
	if upd.Access != nil && !domain.IsValidAccess(*upd.Access) {
		return domain.ErrInvalidField("event_access", "must be Public, Private or Inactive")
	}
	if upd.Cost != nil && *upd.Cost < 0 {
		return domain.ErrInvalidField("cost", "must be non-negative")
	}

	if _, err := s.requireCreatorOrFaculty(ctx, eventID, updaterID); err != nil {
		return err
	}
	return s.repo.Update(ctx, eventID, upd)
}
