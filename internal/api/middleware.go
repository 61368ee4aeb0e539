package api

import (
	"net/http"

	"savant-seeker/backend/internal/interfaces"
)

// requireUser rejects requests while nobody is signed in.
func requireUser(auth interfaces.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := auth.CurrentUser(); err != nil {
				respondWithError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
