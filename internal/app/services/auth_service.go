package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/app/models/dto"
	"github.com/utpgestion/academico/internal/app/repositories"
	"github.com/utpgestion/academico/internal/pkg/apperrors"
	"github.com/utpgestion/academico/internal/pkg/auth"
)

// UserTable is the read-only authentication table. It is built once at
// startup from configuration and never mutated afterwards, so lookups need
// no locking.
type UserTable struct {
	users map[string]*models.User
}

// NewUserTable builds the table from the given users, keyed by lowercased
// username.
func NewUserTable(users []*models.User) *UserTable {
	table := &UserTable{users: make(map[string]*models.User, len(users))}
	for _, user := range users {
		table.users[strings.ToLower(user.Username)] = user
	}
	return table
}

// Lookup returns the user for a username, case-insensitively.
func (t *UserTable) Lookup(username string) (*models.User, bool) {
	user, ok := t.users[strings.ToLower(username)]
	return user, ok
}

// Len returns the number of users in the table.
func (t *UserTable) Len() int {
	return len(t.users)
}

// AuthService authenticates users against the injected table and manages
// their sessions in the key-value store.
type AuthService struct {
	users    *UserTable
	sessions *repositories.SessionStore
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(users *UserTable, sessions *repositories.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		logger:   logger,
	}
}

// Login verifies the credentials and opens a new session. An unknown
// username, a wrong password and a deactivated user all fail with
// ErrInvalidCredentials; the caller cannot tell them apart.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, ok := s.users.Lookup(req.Username)
	if !ok || !user.Active || !auth.CheckPassword(req.Password, user.PasswordHash) {
		s.logger.Warn().Str("username", req.Username).Msg("Login rejected")
		return nil, apperrors.ErrInvalidCredentials
	}

	sessionID, err := s.sessions.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("User logged in")

	return &dto.LoginResponse{
		Success:   true,
		Message:   "login successful",
		SessionID: sessionID,
		Username:  user.Username,
		FullName:  user.FullName(),
		Role:      user.Role,
	}, nil
}

// Validate resolves a session id to its payload, or ErrSessionNotFound.
func (s *AuthService) Validate(ctx context.Context, sessionID string) (*repositories.Session, error) {
	return s.sessions.Get(ctx, sessionID)
}

// Logout closes the session; reports whether one existed.
func (s *AuthService) Logout(ctx context.Context, sessionID string) (bool, error) {
	existed, err := s.sessions.Delete(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if existed {
		s.logger.Info().Str("sessionId", sessionID).Msg("Session closed")
	}
	return existed, nil
}

// Renew extends a live session's expiry by the full TTL.
func (s *AuthService) Renew(ctx context.Context, sessionID string) (bool, error) {
	return s.sessions.Renew(ctx, sessionID)
}
