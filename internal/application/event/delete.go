package event

import (
	"context"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

// SoftDelete marks an event Inactive. Creator or Faculty only.
func (s *Service) SoftDelete(ctx context.Context, eventID int64, actorID string) error {
	if actorID == "" {
		return domain.ErrMissingField("user_id")
	}
	if _, err := s.requireCreatorOrFaculty(ctx, eventID, actorID); err != nil {
		return err
	}
	return s.repo.SetAccess(ctx, eventID, domain.AccessInactive)
}

// HardDelete removes the event row outright. Faculty only.
func (s *Service) HardDelete(ctx context.Context, eventID int64, actorID string) error {
	if actorID == "" {
		return domain.ErrMissingField("user_id")
	}
	role, err := s.roles.RoleOf(ctx, actorID)
	if err != nil {
		if domain.Is(err, "account_not_found") {
			return domain.ErrForbidden()
		}
		return err
	}
	if role != domain.RoleFaculty {
		return domain.ErrForbidden()
	}
	// Ensure the event exists so the caller gets 404, not a silent no-op.
	if _, err := s.repo.GetByID(ctx, eventID, true); err != nil {
		return err
	}
	return s.repo.Delete(ctx, eventID)
}
