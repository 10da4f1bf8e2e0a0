package middleware

import (
	"net/http"

	"github.com/google/uuid"

	appctx "github.com/Tzuyuchae/ansonzaneproject/internal/pkg/context"
)

const HeaderXRequestID = "X-Request-Id"

// RequestID honors an incoming X-Request-Id header or mints a fresh one, and
// echoes it back so callers can correlate logs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set(HeaderXRequestID, reqID)

		ctx := appctx.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
