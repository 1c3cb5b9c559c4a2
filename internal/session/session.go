// Package session keeps the authenticated identity in a signed cookie and
// carries one-shot flash notices across redirects.
package session

import (
	"errors"
	"net/http"
	"time"

	"bookshelf/internal/models"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const CookieName = "session"

var ErrNoSession = errors.New("no session")

type claims struct {
	UserID int64 `json:"uid"`
	jwt.StandardClaims
}

type Manager struct {
	secret []byte
	maxAge time.Duration
	secure bool
}

func NewManager(secret string, maxAge time.Duration, secure bool) *Manager {
	return &Manager{secret: []byte(secret), maxAge: maxAge, secure: secure}
}

// Start establishes userID as the session identity, replacing any previous one.
func (m *Manager) Start(w http.ResponseWriter, userID int64) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(m.maxAge).Unix(),
		},
	})

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tokenString,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.maxAge.Seconds()),
	})
	return nil
}

// Clear drops the session identity whether or not one exists.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// Identity returns the caller's identity if the request carries a valid,
// unexpired session cookie.
func (m *Manager) Identity(r *http.Request) (models.Identity, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return models.Identity{}, false
	}

	userID, err := m.validateToken(cookie.Value)
	if err != nil {
		return models.Identity{}, false
	}
	return models.Identity{UserID: userID}, true
}

func (m *Manager) validateToken(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, ErrNoSession
	}

	c, ok := token.Claims.(*claims)
	if !ok || c.UserID == 0 {
		return 0, jwt.ErrInvalidKey
	}
	return c.UserID, nil
}
