package ports

import (
	"context"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// SessionStore holds authenticated-identity records keyed by an opaque
// session ID. Records expire server-side; Get on an expired or unknown ID
// returns domain.ErrSessionNotFound.
type SessionStore interface {
	Create(ctx context.Context, s *domain.Session) (string, error)
	Get(ctx context.Context, sid string) (*domain.Session, error)
	Destroy(ctx context.Context, sid string) error
}
