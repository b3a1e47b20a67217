package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

// CookieName is the browser cookie carrying the signed session ID.
const CookieName = "marina_session"

// sessionContextKey is where the resolved session record lives in the echo
// context for the duration of one request.
const sessionContextKey = "session"

// SignSessionID wraps a session ID in a compact HS256-signed token suitable
// for a cookie value. The token carries nothing but the ID; the identity
// record itself stays server-side.
func SignSessionID(secret, sid string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sid": sid})
	return t.SignedString([]byte(secret))
}

// SessionIDFromCookie extracts and verifies the session ID from the request
// cookie. Any failure (missing cookie, bad signature, wrong algorithm)
// returns an empty ID.
func SessionIDFromCookie(c echo.Context, secret string) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return ""
	}

	sid, _ := claims["sid"].(string)
	return sid
}

// RequireSession is the authentication gate. It resolves the session cookie
// to a server-side record and injects the record into the request context;
// anything short of that redirects to the login page. API routes get the
// same redirect as page routes.
func RequireSession(store ports.SessionStore, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := SessionIDFromCookie(c, secret)
			if sid == "" {
				return c.Redirect(http.StatusFound, "/")
			}

			sess, err := store.Get(c.Request().Context(), sid)
			if err != nil {
				return c.Redirect(http.StatusFound, "/")
			}

			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// CurrentSession returns the identity record resolved by RequireSession,
// or nil outside a gated route.
func CurrentSession(c echo.Context) *domain.Session {
	sess, _ := c.Get(sessionContextKey).(*domain.Session)
	return sess
}
