package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/app/models/dto"
	"github.com/utpgestion/academico/internal/app/repositories"
	"github.com/utpgestion/academico/internal/pkg/apperrors"
	"github.com/utpgestion/academico/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) (*AuthService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := repositories.NewSessionStore(client, 24*time.Hour)

	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)

	inactiveHash, err := auth.HashPassword("gone123")
	require.NoError(t, err)

	table := NewUserTable([]*models.User{
		{
			Username:     "admin",
			PasswordHash: hash,
			Email:        "admin@utp.edu.pe",
			FirstName:    "Admin",
			LastName:     "Sistema",
			Role:         models.RoleAdmin,
			Active:       true,
		},
		{
			Username:     "egresado",
			PasswordHash: inactiveHash,
			Role:         models.RoleUser,
			Active:       false,
		},
	})

	return NewAuthService(table, sessions, zerolog.Nop()), mr
}

func TestLogin_Success(t *testing.T) {
	service, mr := newTestAuthService(t)

	response, err := service.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)

	assert.True(t, response.Success)
	assert.NotEmpty(t, response.SessionID)
	assert.Equal(t, "admin", response.Username)
	assert.Equal(t, models.RoleAdmin, response.Role)

	key := "session:" + response.SessionID
	assert.True(t, mr.Exists(key))
	ttl := mr.TTL(key)
	assert.True(t, ttl > 0 && ttl <= 24*time.Hour, "session must expire")
}

func TestLogin_WrongPassword(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.Login(context.Background(), &dto.LoginRequest{
		Username: "egresado",
		Password: "gone123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_CaseInsensitiveUsername(t *testing.T) {
	service, _ := newTestAuthService(t)

	response, err := service.Login(context.Background(), &dto.LoginRequest{
		Username: "ADMIN",
		Password: "admin123",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", response.Username)
}

func TestValidate_RoundTrip(t *testing.T) {
	service, _ := newTestAuthService(t)

	response, err := service.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)

	session, err := service.Validate(context.Background(), response.SessionID)
	require.NoError(t, err)

	assert.Equal(t, "admin", session.Username)
	assert.Equal(t, models.RoleAdmin, session.Role)
	assert.Equal(t, "Admin Sistema", session.FullName)
}

func TestValidate_ExpiredSession(t *testing.T) {
	service, mr := newTestAuthService(t)

	response, err := service.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)

	mr.FastForward(25 * time.Hour)

	_, err = service.Validate(context.Background(), response.SessionID)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestLogout(t *testing.T) {
	service, _ := newTestAuthService(t)

	response, err := service.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)

	existed, err := service.Logout(context.Background(), response.SessionID)
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = service.Validate(context.Background(), response.SessionID)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	existed, err = service.Logout(context.Background(), response.SessionID)
	require.NoError(t, err)
	assert.False(t, existed, "second logout finds nothing")
}

func TestRenew_PushesExpiryForward(t *testing.T) {
	service, mr := newTestAuthService(t)

	response, err := service.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)

	mr.FastForward(12 * time.Hour)

	renewed, err := service.Renew(context.Background(), response.SessionID)
	require.NoError(t, err)
	assert.True(t, renewed)

	mr.FastForward(13 * time.Hour)

	_, err = service.Validate(context.Background(), response.SessionID)
	assert.NoError(t, err, "renewed session survives past its original expiry")
}

func TestRenew_UnknownSession(t *testing.T) {
	service, _ := newTestAuthService(t)

	renewed, err := service.Renew(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.False(t, renewed)
}
