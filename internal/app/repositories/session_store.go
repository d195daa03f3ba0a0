package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/pkg/apperrors"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps login sessions as hashes in the key-value store. Every
// session expires after the configured TTL; renewal just pushes the expiry
// forward.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// Session is the payload stored per session id.
type Session struct {
	Username  string
	FullName  string
	Email     string
	Role      string
	LoginTime string
}

// NewSessionStore creates a new session store
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Create stores a new session for the user and returns its id.
func (s *SessionStore) Create(ctx context.Context, user *models.User) (string, error) {
	sessionID := uuid.NewString()

	fields := map[string]interface{}{
		"username":  user.Username,
		"fullName":  user.FullName(),
		"email":     user.Email,
		"role":      user.Role,
		"loginTime": time.Now().Format(time.RFC3339),
	}

	key := sessionKey(sessionID)
	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return "", fmt.Errorf("error storing session: %w", err)
	}

	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("error setting session expiry: %w", err)
	}

	return sessionID, nil
}

// Get returns the session payload, or ErrSessionNotFound for an absent or
// expired id.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, apperrors.ErrSessionNotFound
	}

	fields, err := s.client.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return nil, apperrors.ErrSessionNotFound
	}

	return &Session{
		Username:  fields["username"],
		FullName:  fields["fullName"],
		Email:     fields["email"],
		Role:      fields["role"],
		LoginTime: fields["loginTime"],
	}, nil
}

// Delete removes a session; reports whether one existed.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	deleted, err := s.client.Del(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

// Renew extends a live session's expiry by the full TTL; reports whether the
// session still existed.
func (s *SessionStore) Renew(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	exists, err := s.client.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return false, err
	}
	if exists == 0 {
		return false, nil
	}

	if err := s.client.Expire(ctx, sessionKey(sessionID), s.ttl).Err(); err != nil {
		return false, err
	}

	return true, nil
}
