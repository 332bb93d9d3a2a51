package dataloader

import "net/http"

// Middleware attaches a fresh set of loaders to every request.
func Middleware(users userRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(users))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
