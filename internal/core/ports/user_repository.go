package ports

import (
	"context"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// UserUpdate carries the replaceable fields of a user. PasswordHash, when
// non-nil, must already have been through the credential transform.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// UserRepository defines the persistence operations for users. Every read
// except FindByEmail omits the password hash; FindByEmail returns it and
// exists solely for the login flow.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id string, fields UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
