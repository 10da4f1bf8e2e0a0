package engagement

import (
	"context"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

/*
EngagementRepo
--------------
Membership relation per (userID, eventID, kind). The store resolves
concurrent adds for the same pair through its primary key: exactly one
caller observes wasAdded=true.
*/
type EngagementRepo interface {
	Add(ctx context.Context, kind domain.EngagementKind, userID string, eventID int64) (wasAdded bool, err error)
	Remove(ctx context.Context, kind domain.EngagementKind, userID string, eventID int64) (wasRemoved bool, err error)
	MembersOf(ctx context.Context, kind domain.EngagementKind, eventID int64) ([]string, error)
}
