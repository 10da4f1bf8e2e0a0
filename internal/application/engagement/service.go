package engagement

import (
	"context"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

// Service owns the like and RSVP relations. Both are idempotent sets:
// adding an existing member or removing a missing one is a no-op, not an
// error. Counts are always derived live from the membership relation, so
// they equal |members| at every read and cannot drift.
type Service struct {
	repo EngagementRepo
}

func NewService(repo EngagementRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) summary(ctx context.Context, kind domain.EngagementKind, eventID int64) (domain.EngagementSummary, error) {
	members, err := s.repo.MembersOf(ctx, kind, eventID)
	if err != nil {
		return domain.EngagementSummary{}, err
	}
	return domain.EngagementSummary{
		EventID: eventID,
		Kind:    kind,
		Members: members,
		Count:   len(members),
	}, nil
}

// Like adds userID to the like set and returns the resulting count.
func (s *Service) Like(ctx context.Context, userID string, eventID int64) (domain.EngagementSummary, error) {
	if userID == "" {
		return domain.EngagementSummary{}, domain.ErrMissingField("user_id")
	}
	if _, err := s.repo.Add(ctx, domain.KindLike, userID, eventID); err != nil {
		return domain.EngagementSummary{}, err
	}
	return s.summary(ctx, domain.KindLike, eventID)
}

// Unlike removes userID from the like set and returns the resulting count.
func (s *Service) Unlike(ctx context.Context, userID string, eventID int64) (domain.EngagementSummary, error) {
	if userID == "" {
		return domain.EngagementSummary{}, domain.ErrMissingField("user_id")
	}
	if _, err := s.repo.Remove(ctx, domain.KindLike, userID, eventID); err != nil {
		return domain.EngagementSummary{}, err
	}
	return s.summary(ctx, domain.KindLike, eventID)
}

// RSVP adds userID to the RSVP set and returns the member list.
func (s *Service) RSVP(ctx context.Context, userID string, eventID int64) (domain.EngagementSummary, error) {
	if userID == "" {
		return domain.EngagementSummary{}, domain.ErrMissingField("user_id")
	}
	if _, err := s.repo.Add(ctx, domain.KindRSVP, userID, eventID); err != nil {
		return domain.EngagementSummary{}, err
	}
	return s.summary(ctx, domain.KindRSVP, eventID)
}

// CancelRSVP removes userID from the RSVP set and returns the member list.
func (s *Service) CancelRSVP(ctx context.Context, userID string, eventID int64) (domain.EngagementSummary, error) {
	if userID == "" {
		return domain.EngagementSummary{}, domain.ErrMissingField("user_id")
	}
	if _, err := s.repo.Remove(ctx, domain.KindRSVP, userID, eventID); err != nil {
		return domain.EngagementSummary{}, err
	}
	return s.summary(ctx, domain.KindRSVP, eventID)
}

// Summary answers "who liked / who RSVPed" for one relation of one event.
func (s *Service) Summary(ctx context.Context, kind domain.EngagementKind, eventID int64) (domain.EngagementSummary, error) {
	if !kind.Valid() {
		return domain.EngagementSummary{}, domain.ErrInvalidField("kind", "must be like or rsvp")
	}
	return s.summary(ctx, kind, eventID)
}
