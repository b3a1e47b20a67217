package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/port-russell/marina-api/internal/core/domain"
)

const defaultSessionTTL = 24 * time.Hour

// SessionStore keeps authenticated-identity records in Redis.
// Key format: session:<uuid>. Expiry is handled by the key TTL, so a
// stale browser cookie simply stops resolving.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// A non-positive TTL falls back to 24 hours.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Create stores the session record under a fresh ID and returns that ID.
func (s *SessionStore) Create(ctx context.Context, sess *domain.Session) (string, error) {
	payload, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	sid := uuid.NewString()
	if err := s.client.Set(ctx, s.key(sid), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return sid, nil
}

// Get resolves a session ID to its record. Unknown and expired IDs both
// return domain.ErrSessionNotFound.
func (s *SessionStore) Get(ctx context.Context, sid string) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, s.key(sid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

// Destroy removes the session record. Deleting an absent key is not an error.
func (s *SessionStore) Destroy(ctx context.Context, sid string) error {
	return s.client.Del(ctx, s.key(sid)).Err()
}

func (s *SessionStore) key(sid string) string {
	return "session:" + sid
}
