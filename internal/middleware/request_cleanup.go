package middleware

import (
	"io"
	"net/http"
)

// DefaultMaxBodyBytes is enough for a full program template or a long workout session.
const DefaultMaxBodyBytes = 1 << 20

// LimitAndDrainBody caps the request body at maxBytes (JSON decoding fails past it) and
// drains and closes whatever the handler did not read.
func LimitAndDrainBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && maxBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
