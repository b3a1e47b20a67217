package ports

import (
	"context"

	"github.com/port-russell/marina-api/internal/core/domain"
)

// CreateUserInput carries the data needed to provision a user account.
// Password is plaintext here; the service hashes it before persistence.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserInput replaces a user's profile. An empty Password leaves the
// stored credential unchanged.
type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UserService defines use-case operations for the user directory.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) (*domain.User, error)
}
