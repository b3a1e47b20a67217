package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

// AuthService implements login and logout on top of the user directory and
// the session store.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, logger: logger}
}

// Login verifies the credentials and creates a session record. An unknown
// email and a wrong password fail identically so the caller cannot probe
// the user directory.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{UserID: user.ID, Name: user.Name, Email: user.Email}
	sid, err := s.sessions.Create(ctx, session)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("email", user.Email).Msg("user logged in")
	return sid, session, nil
}

// Logout destroys the session. Destruction failures are logged and
// swallowed; the caller redirects regardless.
func (s *AuthService) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, sid); err != nil {
		s.logger.Error().Err(err).Msg("failed to destroy session")
	}
	return nil
}
