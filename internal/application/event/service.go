package event

import (
	"context"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

// Service owns event CRUD and search. Events are external collaborators to
// the account core; the only cross-cutting rule is the creator-or-Faculty
// authorization on mutations.
type Service struct {
	repo  EventRepo
	roles RoleDirectory
}

func NewService(repo EventRepo, roles RoleDirectory) *Service {
	return &Service{repo: repo, roles: roles}
}

// requireCreatorOrFaculty authorizes a mutation on an event. The event is
// looked up including inactive rows so a soft-deleted event still answers
// ownership questions for its creator.
func (s *Service) requireCreatorOrFaculty(ctx context.Context, eventID int64, actorID string) (domain.Event, error) {
	e, err := s.repo.GetByID(ctx, eventID, true)
	if err != nil {
		return domain.Event{}, err
	}
	if e.CreatorID == actorID {
		return e, nil
	}
	role, err := s.roles.RoleOf(ctx, actorID)
	if err != nil {
		if domain.Is(err, "account_not_found") {
			return domain.Event{}, domain.ErrForbidden()
		}
		return domain.Event{}, err
	}
	if role != domain.RoleFaculty {
		return domain.Event{}, domain.ErrForbidden()
	}
	return e, nil
}
