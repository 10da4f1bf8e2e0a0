package http_handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Tzuyuchae/ansonzaneproject/internal/application/engagement"
	"github.com/Tzuyuchae/ansonzaneproject/internal/application/event"
	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
	"github.com/Tzuyuchae/ansonzaneproject/internal/logger"
	"github.com/Tzuyuchae/ansonzaneproject/internal/transport/http/dto"
	"github.com/Tzuyuchae/ansonzaneproject/internal/transport/http/middleware"
	"github.com/Tzuyuchae/ansonzaneproject/internal/transport/http/response"
)

type EventsHandler struct {
	events      *event.Service
	engagements *engagement.Service
}

func NewEventsHandler(events *event.Service, engagements *engagement.Service) *EventsHandler {
	return &EventsHandler{events: events, engagements: engagements}
}

// ---------- helpers ----------

func eventIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "event_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidField("event_id", "must be an integer")
	}
	return id, nil
}

// view hydrates one event with its live engagement state.
func (h *EventsHandler) view(r *http.Request, e domain.Event, userID string) (dto.EventView, error) {
	likes, err := h.engagements.Summary(r.Context(), domain.KindLike, e.ID)
	if err != nil {
		return dto.EventView{}, err
	}
	rsvps, err := h.engagements.Summary(r.Context(), domain.KindRSVP, e.ID)
	if err != nil {
		return dto.EventView{}, err
	}
	return dto.NewEventView(e, likes.Members, rsvps.Members, userID), nil
}

func (h *EventsHandler) views(r *http.Request, events []domain.Event, userID string) ([]dto.EventView, error) {
	out := make([]dto.EventView, 0, len(events))
	for _, e := range events {
		v, err := h.view(r, e, userID)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ---------- CRUD ----------

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"
	userID := r.URL.Query().Get("user_id")

	events, err := h.events.List(r.Context(), includeInactive)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	views, err := h.views(r, events, userID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, views)
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := eventIDParam(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	userID := r.URL.Query().Get("user_id")

	e, err := h.events.Get(r.Context(), id, false)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	v, err := h.view(r, e, userID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, v)
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEventRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	e, err := req.ToDomain()
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	id, err := h.events.Create(r.Context(), e)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	lg := logger.WithCtx(r.Context())
	lg.Info().
		Int64("event_id", id).
		Str("creator_id", e.CreatorID).
		Msg("event_created")

	response.Created(w, dto.CreateEventData{EventID: id})
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := eventIDParam(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var req dto.UpdateEventRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	upd, err := req.ToUpdate()
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.events.Update(r.Context(), id, req.UpdaterID, upd); err != nil {
		response.WriteError(w, r, err)
		return
	}

	lg := logger.WithCtx(r.Context())
	lg.Info().
		Int64("event_id", id).
		Str("updater_id", req.UpdaterID).
		Msg("event_updated")

	response.OK(w, dto.MessageData{Message: "Event updated."})
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := eventIDParam(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	userID := r.URL.Query().Get("user_id")
	hard := r.URL.Query().Get("hard") == "true"

	if hard {
		err = h.events.HardDelete(r.Context(), id, userID)
	} else {
		err = h.events.SoftDelete(r.Context(), id, userID)
	}
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	lg := logger.WithCtx(r.Context())
	lg.Info().
		Int64("event_id", id).
		Str("user_id", userID).
		Bool("hard", hard).
		Msg("event_deleted")

	response.OK(w, dto.MessageData{Message: "Event deleted."})
}

// ---------- Search ----------

func (h *EventsHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := event.SearchFilter{
		TitleContains:       q.Get("title"),
		DescriptionContains: q.Get("description"),
		Category:            q.Get("category"),
	}
	if raw := q.Get("start_date"); raw != "" {
		ts, err := parseSearchDate(raw, false)
		if err != nil {
			response.WriteError(w, r, err)
			return
		}
		filter.StartFrom = &ts
	}
	if raw := q.Get("end_date"); raw != "" {
		ts, err := parseSearchDate(raw, true)
		if err != nil {
			response.WriteError(w, r, err)
			return
		}
		filter.StartUntil = &ts
	}

	events, err := h.events.Search(r.Context(), filter)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	views, err := h.views(r, events, q.Get("user_id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, views)
}

// parseSearchDate accepts a bare date or a full timestamp. A bare end date
// is pushed to the end of its day so the bound is inclusive.
func parseSearchDate(raw string, endOfDay bool) (time.Time, error) {
	if ts, err := time.Parse(domain.TimeLayout, raw); err == nil {
		return ts, nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, domain.ErrInvalidField("date", "expected YYYY-MM-DD or YYYY-MM-DD HH:MM:SS")
	}
	if endOfDay {
		d = d.Add(24*time.Hour - time.Second)
	}
	return d, nil
}

// ---------- Likes and RSVPs ----------

func (h *EventsHandler) engagementUser(w http.ResponseWriter, r *http.Request) (string, int64, bool) {
	id, err := eventIDParam(r)
	if err != nil {
		response.WriteError(w, r, err)
		return "", 0, false
	}

	var req dto.EngagementRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return "", 0, false
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return "", 0, false
	}
	return req.UserID, id, true
}

func (h *EventsHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.engagementUser(w, r)
	if !ok {
		return
	}

	sum, err := h.engagements.Like(r.Context(), userID, id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	middleware.EngagementActionsTotal.WithLabelValues("like", "add").Inc()
	response.OK(w, dto.LikesData{Likes: sum.Count})
}

func (h *EventsHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.engagementUser(w, r)
	if !ok {
		return
	}

	sum, err := h.engagements.Unlike(r.Context(), userID, id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	middleware.EngagementActionsTotal.WithLabelValues("like", "remove").Inc()
	response.OK(w, dto.LikesData{Likes: sum.Count})
}

func (h *EventsHandler) RSVP(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.engagementUser(w, r)
	if !ok {
		return
	}

	sum, err := h.engagements.RSVP(r.Context(), userID, id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	middleware.EngagementActionsTotal.WithLabelValues("rsvp", "add").Inc()
	response.OK(w, dto.RSVPsData{RSVPs: membersOrEmpty(sum.Members)})
}

func (h *EventsHandler) CancelRSVP(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.engagementUser(w, r)
	if !ok {
		return
	}

	sum, err := h.engagements.CancelRSVP(r.Context(), userID, id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	middleware.EngagementActionsTotal.WithLabelValues("rsvp", "remove").Inc()
	response.OK(w, dto.RSVPsData{RSVPs: membersOrEmpty(sum.Members)})
}

func membersOrEmpty(members []string) []string {
	if members == nil {
		return []string{}
	}
	return members
}
