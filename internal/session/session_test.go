package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// requestWith replays the cookies a response set onto a fresh request.
func requestWith(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			continue
		}
		req.AddCookie(c)
	}
	return req
}

func TestStartAndIdentity(t *testing.T) {
	m := NewManager("test-secret", time.Hour, false)

	rec := httptest.NewRecorder()
	if err := m.Start(rec, 7); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	identity, ok := m.Identity(requestWith(rec))
	if !ok {
		t.Fatal("expected an identity")
	}
	if identity.UserID != 7 {
		t.Errorf("expected user 7, got %d", identity.UserID)
	}
}

func TestIdentity_NoCookie(t *testing.T) {
	m := NewManager("test-secret", time.Hour, false)

	if _, ok := m.Identity(httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Error("expected no identity without a cookie")
	}
}

func TestIdentity_WrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour, false)
	verifier := NewManager("secret-b", time.Hour, false)

	rec := httptest.NewRecorder()
	if err := issuer.Start(rec, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if _, ok := verifier.Identity(requestWith(rec)); ok {
		t.Error("token signed with another secret must be rejected")
	}
}

func TestIdentity_Tampered(t *testing.T) {
	m := NewManager("test-secret", time.Hour, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not.a.token"})

	if _, ok := m.Identity(req); ok {
		t.Error("garbage token must be rejected")
	}
}

func TestIdentity_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, false)

	rec := httptest.NewRecorder()
	if err := m.Start(rec, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	if _, ok := m.Identity(req); ok {
		t.Error("expired token must be rejected")
	}
}

func TestClear(t *testing.T) {
	m := NewManager("test-secret", time.Hour, false)

	rec := httptest.NewRecorder()
	m.Clear(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].Name != CookieName || cookies[0].MaxAge >= 0 {
		t.Errorf("expected expired session cookie, got %+v", cookies[0])
	}
}

func TestFlashRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour, false)

	rec := httptest.NewRecorder()
	m.AddFlash(rec, httptest.NewRequest(http.MethodPost, "/add", nil), FlashSuccess, "Book added successfully!")

	next := httptest.NewRecorder()
	flashes := m.PopFlashes(next, requestWith(rec))
	if len(flashes) != 1 {
		t.Fatalf("expected 1 flash, got %d", len(flashes))
	}
	if flashes[0].Kind != FlashSuccess || flashes[0].Message != "Book added successfully!" {
		t.Errorf("unexpected flash: %+v", flashes[0])
	}

	// Popping expires the cookie so the notice is shown once.
	cleared := next.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Errorf("expected flash cookie to be cleared, got %+v", cleared)
	}
}

func TestPopFlashes_Empty(t *testing.T) {
	m := NewManager("test-secret", time.Hour, false)

	rec := httptest.NewRecorder()
	if flashes := m.PopFlashes(rec, httptest.NewRequest(http.MethodGet, "/", nil)); flashes != nil {
		t.Errorf("expected no flashes, got %v", flashes)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("no cookie should be written when there is nothing to pop")
	}
}
