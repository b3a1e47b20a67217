package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// CreateUser provisions an account. The email is lowercased before
// persistence and the password never reaches the repository in plaintext.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        strings.ToLower(input.Email),
		PasswordHash: string(hash),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("email", strings.ToLower(input.Email)).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Msg("user created")
	return created, nil
}

// ListUsers returns every user, password hash omitted.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateUser replaces the user's profile. An empty Password keeps the
// stored credential; a non-empty one is hashed before it is written.
func (s *UserService) UpdateUser(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	email := strings.ToLower(input.Email)
	fields := ports.UserUpdate{Name: &input.Name, Email: &email}

	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		fields.PasswordHash = &hashed
	}

	return s.repo.Update(ctx, id, fields)
}

// DeleteUser removes the account and returns its pre-deletion state.
func (s *UserService) DeleteUser(ctx context.Context, id string) (*domain.User, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("email", deleted.Email).Msg("user deleted")
	return deleted, nil
}
