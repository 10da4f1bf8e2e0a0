package event

import (
	"context"
	"time"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

/*
EventRepo
---------
Persistence port for events. Create persists the event row together with its
extra categories; GetByID/List hydrate categories back.
*/
type EventRepo interface {
	Create(ctx context.Context, e domain.Event) (int64, error)
	GetByID(ctx context.Context, id int64, includeInactive bool) (domain.Event, error)
	List(ctx context.Context, includeInactive bool) ([]domain.Event, error)
	Update(ctx context.Context, id int64, upd Update) error
	SetAccess(ctx context.Context, id int64, access string) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, f SearchFilter) ([]domain.Event, error)
}

/*
RoleDirectory
-------------
Answers the only authorization question this service asks: what role label
does an account carry. Faculty accounts may act on events they did not
create.
*/
type RoleDirectory interface {
	RoleOf(ctx context.Context, accountID string) (string, error)
}

// Update is a partial update: nil fields are left untouched.
type Update struct {
	Name         *string
	Description  *string
	Location     *string
	Type         *string
	Access       *string
	StartAt      *time.Time
	EndAt        *time.Time
	RSVPRequired *bool
	IsPriced     *bool
	Cost         *float64
}

// Empty reports whether the update touches nothing.
func (u Update) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Location == nil &&
		u.Type == nil && u.Access == nil && u.StartAt == nil && u.EndAt == nil &&
		u.RSVPRequired == nil && u.IsPriced == nil && u.Cost == nil
}

// SearchFilter narrows List. Zero values mean "no constraint"; a single
// missing date bound is treated as unbounded on that side.
type SearchFilter struct {
	TitleContains       string
	DescriptionContains string
	Category            string
	StartFrom           *time.Time
	StartUntil          *time.Time
}
