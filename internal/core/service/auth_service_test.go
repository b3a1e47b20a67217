package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/port-russell/marina-api/internal/core/domain"
	"github.com/port-russell/marina-api/internal/core/ports"
)

type stubSessionStore struct {
	sessions map[string]*domain.Session
	nextID   int
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Create(_ context.Context, sess *domain.Session) (string, error) {
	s.nextID++
	sid := fmt.Sprintf("sid_%d", s.nextID)
	clone := *sess
	s.sessions[sid] = &clone
	return sid, nil
}

func (s *stubSessionStore) Get(_ context.Context, sid string) (*domain.Session, error) {
	sess, ok := s.sessions[sid]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *sess
	return &clone, nil
}

func (s *stubSessionStore) Destroy(_ context.Context, sid string) error {
	delete(s.sessions, sid)
	return nil
}

func authFixture(t *testing.T) (*AuthService, *stubSessionStore) {
	t.Helper()
	users := newStubUserRepo()
	userSvc := NewUserService(users, zerolog.Nop())
	if _, err := userSvc.CreateUser(context.Background(), ports.CreateUserInput{
		Name:     "Capitaine",
		Email:    "capitaine@port.com",
		Password: "admin123",
	}); err != nil {
		t.Fatalf("fixture user: %v", err)
	}

	sessions := newStubSessionStore()
	return NewAuthService(users, sessions, zerolog.Nop()), sessions
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, store := authFixture(t)

	sid, sess, err := svc.Login(context.Background(), "capitaine@port.com", "admin123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if sid == "" {
		t.Fatalf("expected session ID")
	}
	if sess.Email != "capitaine@port.com" || sess.Name != "Capitaine" || sess.UserID == "" {
		t.Fatalf("unexpected session record: %+v", sess)
	}

	stored, err := store.Get(context.Background(), sid)
	if err != nil {
		t.Fatalf("session not stored: %v", err)
	}
	if stored.Email != sess.Email {
		t.Fatalf("stored session mismatch: %+v", stored)
	}
}

func TestAuthService_Login_MixedCaseEmail(t *testing.T) {
	svc, _ := authFixture(t)

	if _, _, err := svc.Login(context.Background(), "Capitaine@Port.COM", "admin123"); err != nil {
		t.Fatalf("expected case-insensitive email match, got %v", err)
	}
}

func TestAuthService_Login_OpaqueFailures(t *testing.T) {
	svc, _ := authFixture(t)

	// Wrong password and unknown email fail identically.
	_, _, wrongPass := svc.Login(context.Background(), "capitaine@port.com", "nope")
	_, _, unknown := svc.Login(context.Background(), "ghost@port.com", "admin123")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknown)
	}

	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty credentials, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	svc, store := authFixture(t)

	sid, _, err := svc.Login(context.Background(), "capitaine@port.com", "admin123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), sid); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := store.Get(context.Background(), sid); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("session survived logout: %v", err)
	}

	// Logout without a session is not an error.
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("Logout without session returned error: %v", err)
	}
	if err := svc.Logout(context.Background(), sid); err != nil {
		t.Fatalf("repeated Logout returned error: %v", err)
	}
}
