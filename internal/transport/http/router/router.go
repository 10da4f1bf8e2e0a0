package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Tzuyuchae/ansonzaneproject/internal/transport/http/middleware"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AccountsHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	ResendCode(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EventsHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)

	Like(w http.ResponseWriter, r *http.Request)
	Unlike(w http.ResponseWriter, r *http.Request)
	RSVP(w http.ResponseWriter, r *http.Request)
	CancelRSVP(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health   HealthHandler
	Accounts AccountsHandler
	Events   EventsHandler

	RateLimitEnabled bool
	RateLimit        int
	RateLimitWindow  time.Duration

	CORSEnabled        bool
	CORSAllowedOrigins []string

	// MaxBodyBytes caps request bodies; zero selects the default.
	MaxBodyBytes int64
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Accounts == nil {
		return nil, fmt.Errorf("nil Accounts handler")
	}
	if deps.Events == nil {
		return nil, fmt.Errorf("nil Events handler")
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.SecurityHeaders)
	if deps.CORSEnabled {
		r.Use(middleware.CORS(deps.CORSAllowedOrigins))
	}
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(middleware.Metrics)
	r.Use(middleware.BodyLimit(deps.MaxBodyBytes))

	if deps.RateLimitEnabled {
		r.Use(httprate.LimitByIP(deps.RateLimit, deps.RateLimitWindow))
	}

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/accounts/v1", func(r chi.Router) {
		r.Post("/register", deps.Accounts.Register)
		r.Post("/login", deps.Accounts.Login)
		r.Post("/verify", deps.Accounts.Verify)
		r.Post("/resend-code", deps.Accounts.ResendCode)
		r.Delete("/account/{account_id}", deps.Accounts.Delete)
	})

	r.Route("/events/v1", func(r chi.Router) {
		r.Get("/events", deps.Events.List)
		r.Get("/events/{event_id}", deps.Events.Get)
		r.Post("/events", deps.Events.Create)
		r.Put("/events/{event_id}", deps.Events.Update)
		r.Delete("/events/{event_id}", deps.Events.Delete)
		r.Get("/search", deps.Events.Search)

		r.Post("/events/{event_id}/like", deps.Events.Like)
		r.Delete("/events/{event_id}/like", deps.Events.Unlike)
		r.Post("/events/{event_id}/rsvp", deps.Events.RSVP)
		r.Delete("/events/{event_id}/rsvp", deps.Events.CancelRSVP)
	})

	return r, nil
}
