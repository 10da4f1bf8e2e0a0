package domain

import "time"

// Event access levels. Inactive marks a soft-deleted event.
const (
	AccessPublic   = "Public"
	AccessPrivate  = "Private"
	AccessInactive = "Inactive"
)

// Faculty accounts may update or hard-delete events they did not create.
const RoleFaculty = "Faculty"

// TimeLayout is the timestamp format the original data uses for event
// start/end times.
const TimeLayout = "2006-01-02 15:04:05"

var allowedEventTypes = map[string]struct{}{
	"Art":                  {},
	"Math":                 {},
	"Science":              {},
	"Computer Science":     {},
	"History":              {},
	"Education":            {},
	"Political Science":    {},
	"Software Engineering": {},
	"Business":             {},
	"Sports":               {},
	"Honors":               {},
	"Workshops":            {},
	"Study Session":        {},
	"Dissertation":         {},
	"Performance":          {},
	"Competition":          {},
}

var allowedAccess = map[string]struct{}{
	AccessPublic:   {},
	AccessPrivate:  {},
	AccessInactive: {},
}

func IsValidEventType(t string) bool {
	_, ok := allowedEventTypes[t]
	return ok
}

func IsValidAccess(a string) bool {
	_, ok := allowedAccess[a]
	return ok
}

type Event struct {
	ID          int64
	CreatorID   string
	Name        string
	Description string
	Location    string
	Type        string
	Access      string

	StartAt time.Time
	EndAt   time.Time

	RSVPRequired bool
	IsPriced     bool
	Cost         *float64

	Categories []string

	CreatedAt time.Time
}

// Validate checks the fields create requires. Partial updates validate the
// fields they touch at the application layer.
func (e Event) Validate() error {
	if e.CreatorID == "" {
		return ErrMissingField("creator_id")
	}
	if e.Name == "" {
		return ErrMissingField("title")
	}
	if e.Description == "" {
		return ErrMissingField("description")
	}
	if e.Location == "" {
		return ErrMissingField("location")
	}
	if !IsValidEventType(e.Type) {
		return ErrInvalidField("event_type", "not an allowed event type")
	}
	if !IsValidAccess(e.Access) {
		return ErrInvalidField("event_access", "must be Public, Private or Inactive")
	}
	if e.StartAt.IsZero() || e.EndAt.IsZero() {
		return ErrMissingField("start/end datetime")
	}
	if e.EndAt.Before(e.StartAt) {
		return ErrInvalidField("end_datetime", "ends before it starts")
	}
	if e.IsPriced && (e.Cost == nil || *e.Cost < 0) {
		return ErrInvalidField("cost", "priced event requires a non-negative cost")
	}
	return nil
}
