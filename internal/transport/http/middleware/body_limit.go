package middleware

import (
	"net/http"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
	"github.com/Tzuyuchae/ansonzaneproject/internal/transport/http/response"
)

// DefaultMaxBodyBytes caps request bodies at 1 MB unless configured otherwise.
const DefaultMaxBodyBytes int64 = 1 << 20

// BodyLimit caps every request body at maxBytes. A declared Content-Length
// over the limit is rejected up front; bodies without one are cut off by
// http.MaxBytesReader while the handler reads.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				response.WriteError(w, r, domain.ErrPayloadTooLarge(maxBytes))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
