package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/pkg/ctxutil"
)

// RequestIDHeader carries the request ID in and out.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDLen = 128

// RequestID reuses the caller's request ID or generates one, stores it in
// the context and echoes it in the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}
