package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/pkg/apperrors"
)

func setupSessionStore(t *testing.T, ttl time.Duration) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return NewSessionStore(client, ttl), mr
}

func testUser() *models.User {
	return &models.User{
		Username:  "admin",
		Email:     "admin@utp.edu.pe",
		FirstName: "Admin",
		LastName:  "Sistema",
		Role:      models.RoleAdmin,
		Active:    true,
	}
}

func TestSessionStore_CreateAndGet(t *testing.T) {
	store, mr := setupSessionStore(t, 24*time.Hour)
	ctx := context.Background()

	sessionID, err := store.Create(ctx, testUser())
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	session, err := store.Get(ctx, sessionID)
	require.NoError(t, err)

	assert.Equal(t, "admin", session.Username)
	assert.Equal(t, "Admin Sistema", session.FullName)
	assert.Equal(t, models.RoleAdmin, session.Role)
	assert.NotEmpty(t, session.LoginTime)

	ttl := mr.TTL("session:" + sessionID)
	assert.True(t, ttl > 0 && ttl <= 24*time.Hour, "sessions must carry a TTL")
}

func TestSessionStore_GetUnknown(t *testing.T) {
	store, _ := setupSessionStore(t, time.Hour)

	_, err := store.Get(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestSessionStore_GetEmptyID(t *testing.T) {
	store, _ := setupSessionStore(t, time.Hour)

	_, err := store.Get(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestSessionStore_Expiry(t *testing.T) {
	store, mr := setupSessionStore(t, time.Hour)
	ctx := context.Background()

	sessionID, err := store.Create(ctx, testUser())
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = store.Get(ctx, sessionID)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	store, _ := setupSessionStore(t, time.Hour)
	ctx := context.Background()

	sessionID, err := store.Create(ctx, testUser())
	require.NoError(t, err)

	existed, err := store.Delete(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = store.Delete(ctx, sessionID)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestSessionStore_Renew(t *testing.T) {
	store, mr := setupSessionStore(t, time.Hour)
	ctx := context.Background()

	sessionID, err := store.Create(ctx, testUser())
	require.NoError(t, err)

	mr.FastForward(45 * time.Minute)

	renewed, err := store.Renew(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, renewed)

	mr.FastForward(45 * time.Minute)

	_, err = store.Get(ctx, sessionID)
	assert.NoError(t, err, "renewed session outlives the original TTL")
}

func TestSessionStore_RenewUnknown(t *testing.T) {
	store, _ := setupSessionStore(t, time.Hour)

	renewed, err := store.Renew(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.False(t, renewed)
}

func TestSessionStore_ZeroTTLDefaults(t *testing.T) {
	store, _ := setupSessionStore(t, 0)
	assert.Equal(t, 24*time.Hour, store.ttl)
}
