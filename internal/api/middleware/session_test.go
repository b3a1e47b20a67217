package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/port-russell/marina-api/internal/core/domain"
)

const testSecret = "test_secret"

type stubStore struct {
	sessions map[string]*domain.Session
}

func (s *stubStore) Create(_ context.Context, sess *domain.Session) (string, error) {
	return "", nil
}

func (s *stubStore) Get(_ context.Context, sid string) (*domain.Session, error) {
	sess, ok := s.sessions[sid]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *stubStore) Destroy(_ context.Context, sid string) error {
	return nil
}

func gateRequest(t *testing.T, store *stubStore, cookie *http.Cookie) (*httptest.ResponseRecorder, bool, *domain.Session) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	var seen *domain.Session
	mw := RequireSession(store, testSecret)
	err := mw(func(c echo.Context) error {
		called = true
		seen = CurrentSession(c)
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, called, seen
}

func TestRequireSession_NoCookieRedirects(t *testing.T) {
	store := &stubStore{sessions: map[string]*domain.Session{}}

	rec, called, _ := gateRequest(t, store, nil)
	if called {
		t.Fatalf("handler ran without a session")
	}
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected 302 to /, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestRequireSession_ValidCookiePasses(t *testing.T) {
	store := &stubStore{sessions: map[string]*domain.Session{
		"sid_1": {UserID: "u1", Name: "Alice", Email: "alice@port.com"},
	}}

	token, err := SignSessionID(testSecret, "sid_1")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	rec, called, sess := gateRequest(t, store, &http.Cookie{Name: CookieName, Value: token})
	if !called {
		t.Fatalf("handler did not run; status %d", rec.Code)
	}
	if sess == nil || sess.Email != "alice@port.com" {
		t.Fatalf("session not injected into context: %+v", sess)
	}
}

func TestRequireSession_BadSignatureRedirects(t *testing.T) {
	store := &stubStore{sessions: map[string]*domain.Session{
		"sid_1": {UserID: "u1", Name: "Alice", Email: "alice@port.com"},
	}}

	token, err := SignSessionID("other_secret", "sid_1")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	rec, called, _ := gateRequest(t, store, &http.Cookie{Name: CookieName, Value: token})
	if called {
		t.Fatalf("handler ran with a forged cookie")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
}

func TestRequireSession_ExpiredSessionRedirects(t *testing.T) {
	// The cookie verifies but the record is gone server-side.
	store := &stubStore{sessions: map[string]*domain.Session{}}

	token, err := SignSessionID(testSecret, "sid_gone")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	rec, called, _ := gateRequest(t, store, &http.Cookie{Name: CookieName, Value: token})
	if called {
		t.Fatalf("handler ran with an expired session")
	}
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected 302 to /, got %d", rec.Code)
	}
}
