package domain

// EngagementKind distinguishes the two membership relations an event carries.
// Each relation is an independent set of (userID, eventID) pairs.
type EngagementKind string

const (
	KindLike EngagementKind = "like"
	KindRSVP EngagementKind = "rsvp"
)

func (k EngagementKind) Valid() bool {
	return k == KindLike || k == KindRSVP
}

// EngagementSummary reports the state of one relation for one event. Count is
// always derived live from the membership rows, never stored separately.
type EngagementSummary struct {
	EventID int64
	Kind    EngagementKind
	Members []string
	Count   int
}
