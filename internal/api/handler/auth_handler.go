package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/port-russell/marina-api/internal/api/metrics"
	appmiddleware "github.com/port-russell/marina-api/internal/api/middleware"
	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

// AuthHandler implements the browser login and logout flows. Success and
// failure both communicate by redirect: /dashboard on success, the entry
// page with a query-string error code otherwise.
type AuthHandler struct {
	service ports.AuthService
	secret  string
}

func NewAuthHandler(service ports.AuthService, secret string) *AuthHandler {
	return &AuthHandler{service: service, secret: secret}
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Login handles POST /auth/login. Credential failures are opaque: bad email
// and bad password produce the same redirect.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.Redirect(http.StatusFound, "/?error=credentials")
	}

	sid, _, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return c.Redirect(http.StatusFound, "/?error=credentials")
		}
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return c.Redirect(http.StatusFound, "/?error=server")
	}

	token, err := appmiddleware.SignSessionID(h.secret, sid)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return c.Redirect(http.StatusFound, "/?error=server")
	}

	c.SetCookie(&http.Cookie{
		Name:     appmiddleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusFound, "/dashboard")
}

// Logout handles GET /auth/logout. The session is destroyed whether or not
// one exists, and the redirect happens regardless.
func (h *AuthHandler) Logout(c echo.Context) error {
	sid := appmiddleware.SessionIDFromCookie(c, h.secret)
	_ = h.service.Logout(c.Request().Context(), sid)

	c.SetCookie(&http.Cookie{
		Name:     appmiddleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.Redirect(http.StatusFound, "/")
}
