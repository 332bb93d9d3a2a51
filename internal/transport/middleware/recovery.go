package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/fairplay-backend/internal/transport/httperr"
)

// Recovery returns middleware that recovers from panics, logs the error
// with a stack trace, and responds with a 500 ServiceError body.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)
					httperr.Write(w, httperr.Service, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
