package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/port-russell/marina-api/internal/api/middleware"
	"github.com/port-russell/marina-api/internal/core/domain"
)

type stubAuthService struct {
	sid        string
	session    *domain.Session
	loggedOut  []string
	loginCalls int
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.Session, error) {
	s.loginCalls++
	if s.session != nil && email == s.session.Email && password == "admin123" {
		return s.sid, s.session, nil
	}
	return "", nil, domain.ErrInvalidCredentials
}

func (s *stubAuthService) Logout(_ context.Context, sid string) error {
	if sid != "" {
		s.loggedOut = append(s.loggedOut, sid)
	}
	return nil
}

func newAuthFixture() (*AuthHandler, *stubAuthService) {
	svc := &stubAuthService{
		sid:     "sid-123",
		session: &domain.Session{UserID: "u1", Name: "Administrateur", Email: "admin@port.com"},
	}
	return NewAuthHandler(svc, "test_secret"), svc
}

func loginContext(form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h, _ := newAuthFixture()

	c, rec := loginContext(url.Values{"email": {"admin@port.com"}, "password": {"admin123"}})
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}

	res := rec.Result()
	var cookie *http.Cookie
	for _, ck := range res.Cookies() {
		if ck.Name == appmiddleware.CookieName {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatalf("session cookie not set")
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if cookie.Value == "" {
		t.Fatalf("session cookie is empty")
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h, svc := newAuthFixture()

	for _, form := range []url.Values{
		{"email": {"admin@port.com"}, "password": {"wrong"}},
		{"email": {"nobody@port.com"}, "password": {"admin123"}},
	} {
		c, rec := loginContext(form)
		if err := h.Login(c); err != nil {
			t.Fatalf("Login returned error: %v", err)
		}
		if rec.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", rec.Code)
		}
		if loc := rec.Header().Get(echo.HeaderLocation); loc != "/?error=credentials" {
			t.Fatalf("expected credential-error redirect, got %q", loc)
		}
		for _, ck := range rec.Result().Cookies() {
			if ck.Name == appmiddleware.CookieName {
				t.Fatalf("cookie set on failed login")
			}
		}
	}
	if svc.loginCalls != 2 {
		t.Fatalf("expected 2 login attempts, got %d", svc.loginCalls)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	h, svc := newAuthFixture()

	token, err := appmiddleware.SignSessionID("test_secret", "sid-123")
	if err != nil {
		t.Fatalf("sign session id: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: appmiddleware.CookieName, Value: token})
	rec := httptest.NewRecorder()

	if err := h.Logout(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}

	if len(svc.loggedOut) != 1 || svc.loggedOut[0] != "sid-123" {
		t.Fatalf("expected session sid-123 destroyed, got %v", svc.loggedOut)
	}

	var cleared bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == appmiddleware.CookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("session cookie not cleared")
	}
}

func TestAuthHandler_Logout_WithoutCookie(t *testing.T) {
	h, svc := newAuthFixture()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	rec := httptest.NewRecorder()

	if err := h.Logout(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
	if len(svc.loggedOut) != 0 {
		t.Fatalf("no session should have been destroyed, got %v", svc.loggedOut)
	}
}
