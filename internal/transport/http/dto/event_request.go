package dto

import (
	"time"

	"github.com/Tzuyuchae/ansonzaneproject/internal/application/event"
	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

// Timestamps travel as "YYYY-MM-DD HH:MM:SS" strings, matching the stored
// form.

type CreateEventRequest struct {
	CreatorID     string   `json:"creatorID" validate:"required"`
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Location      string   `json:"location" validate:"required"`
	EventType     string   `json:"eventType" validate:"required,event_type"`
	StartDateTime string   `json:"startDateTime" validate:"required"`
	EndDateTime   string   `json:"endDateTime" validate:"required"`
	EventAccess   string   `json:"eventAccess,omitempty" validate:"omitempty,event_access"`
	RSVPRequired  bool     `json:"rsvpRequired,omitempty"`
	IsPriced      bool     `json:"isPriced,omitempty"`
	Cost          *float64 `json:"cost,omitempty"`
	Categories    []string `json:"categories,omitempty"`
}

func (r *CreateEventRequest) Validate() error {
	return validateStruct(r)
}

// ToDomain parses the timestamp strings and assembles the domain event.
func (r *CreateEventRequest) ToDomain() (domain.Event, error) {
	start, err := time.Parse(domain.TimeLayout, r.StartDateTime)
	if err != nil {
		return domain.Event{}, domain.ErrInvalidField("startDateTime", "expected YYYY-MM-DD HH:MM:SS")
	}
	end, err := time.Parse(domain.TimeLayout, r.EndDateTime)
	if err != nil {
		return domain.Event{}, domain.ErrInvalidField("endDateTime", "expected YYYY-MM-DD HH:MM:SS")
	}

	return domain.Event{
		CreatorID:    r.CreatorID,
		Name:         r.Title,
		Description:  r.Description,
		Location:     r.Location,
		Type:         r.EventType,
		Access:       r.EventAccess,
		StartAt:      start,
		EndAt:        end,
		RSVPRequired: r.RSVPRequired,
		IsPriced:     r.IsPriced,
		Cost:         r.Cost,
		Categories:   r.Categories,
	}, nil
}

type UpdateEventRequest struct {
	UpdaterID     string   `json:"updaterID" validate:"required"`
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Location      *string  `json:"location,omitempty"`
	EventType     *string  `json:"eventType,omitempty"`
	StartDateTime *string  `json:"startDateTime,omitempty"`
	EndDateTime   *string  `json:"endDateTime,omitempty"`
	EventAccess   *string  `json:"eventAccess,omitempty"`
	RSVPRequired  *bool    `json:"rsvpRequired,omitempty"`
	IsPriced      *bool    `json:"isPriced,omitempty"`
	Cost          *float64 `json:"cost,omitempty"`
}

func (r *UpdateEventRequest) Validate() error {
	return validateStruct(r)
}

// ToUpdate maps supplied fields to the application-layer partial update.
func (r *UpdateEventRequest) ToUpdate() (event.Update, error) {
	upd := event.Update{
		Name:         r.Title,
		Description:  r.Description,
		Location:     r.Location,
		Type:         r.EventType,
		Access:       r.EventAccess,
		RSVPRequired: r.RSVPRequired,
		IsPriced:     r.IsPriced,
		Cost:         r.Cost,
	}
	if r.StartDateTime != nil {
		start, err := time.Parse(domain.TimeLayout, *r.StartDateTime)
		if err != nil {
			return event.Update{}, domain.ErrInvalidField("startDateTime", "expected YYYY-MM-DD HH:MM:SS")
		}
		upd.StartAt = &start
	}
	if r.EndDateTime != nil {
		end, err := time.Parse(domain.TimeLayout, *r.EndDateTime)
		if err != nil {
			return event.Update{}, domain.ErrInvalidField("endDateTime", "expected YYYY-MM-DD HH:MM:SS")
		}
		upd.EndAt = &end
	}
	return upd, nil
}

// EngagementRequest carries the acting user for like/rsvp actions.
type EngagementRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

func (r *EngagementRequest) Validate() error {
	return validateStruct(r)
}
