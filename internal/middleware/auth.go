package middleware

import (
	"context"
	"net/http"

	"bookshelf/internal/models"
	"bookshelf/internal/session"
)

type contextKey string

const IdentityContextKey contextKey = "identity"

const msgLoginRequired = "Please log in to access this page."

type AuthMiddleware struct {
	sessions *session.Manager
}

func NewAuthMiddleware(sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireAuth short-circuits to the login page when the request has no
// session identity; otherwise next runs with the identity in its context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := m.sessions.Identity(r)
		if !ok {
			m.sessions.AddFlash(w, r, session.FlashError, msgLoginRequired)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), IdentityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) RequireAuthFunc(next http.HandlerFunc) http.Handler {
	return m.RequireAuth(next)
}

func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityContextKey).(models.Identity)
	return identity, ok
}
