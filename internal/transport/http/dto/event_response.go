package dto

import "github.com/Tzuyuchae/ansonzaneproject/internal/domain"

// EventView is the wire shape of one event. Likes travel as a count, RSVPs
// as the member list; both are derived from the membership rows at read time.
type EventView struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Location     string   `json:"location"`
	Category     string   `json:"category"`
	Categories   []string `json:"categories,omitempty"`
	Likes        int      `json:"likes"`
	RSVPs        []string `json:"rsvps"`
	EventAccess  string   `json:"eventAccess"`
	CreatorID    string   `json:"creatorID"`
	Price        *float64 `json:"price,omitempty"`
	RSVPRequired bool     `json:"rsvpRequired"`
	UserLiked    bool     `json:"userLiked"`
	UserRsvped   bool     `json:"userRsvped"`
}

// NewEventView builds the view for one event. userID is optional: when set,
// the per-user liked/rsvped flags are filled in.
func NewEventView(e domain.Event, likes, rsvps []string, userID string) EventView {
	v := EventView{
		ID:           e.ID,
		Title:        e.Name,
		Description:  e.Description,
		StartDate:    e.StartAt.Format(domain.TimeLayout),
		EndDate:      e.EndAt.Format(domain.TimeLayout),
		Location:     e.Location,
		Category:     e.Type,
		Categories:   e.Categories,
		Likes:        len(likes),
		RSVPs:        rsvps,
		EventAccess:  e.Access,
		CreatorID:    e.CreatorID,
		Price:        e.Cost,
		RSVPRequired: e.RSVPRequired,
	}
	if v.RSVPs == nil {
		v.RSVPs = []string{}
	}
	if userID != "" {
		for _, u := range likes {
			if u == userID {
				v.UserLiked = true
				break
			}
		}
		for _, u := range rsvps {
			if u == userID {
				v.UserRsvped = true
				break
			}
		}
	}
	return v
}

type CreateEventData struct {
	EventID int64 `json:"eventID"`
}

type LikesData struct {
	Likes int `json:"likes"`
}

type RSVPsData struct {
	RSVPs []string `json:"rsvps"`
}
