package ports

import (
	"context"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// AuthService implements the login and logout flows. Login failures are
// opaque: an unknown email and a wrong password both surface as
// domain.ErrInvalidCredentials.
type AuthService interface {
	// Login verifies the credentials and, on success, stores a session
	// record and returns its ID alongside the record.
	Login(ctx context.Context, email, password string) (string, *domain.Session, error)
	// Logout destroys the session unconditionally. A missing session is
	// not an error.
	Logout(ctx context.Context, sid string) error
}
