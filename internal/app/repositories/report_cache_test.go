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

func setupReportCache(t *testing.T) (*ReportCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return NewReportCache(client), mr
}

func sampleReport() *models.IntegralReport {
	return &models.IntegralReport{
		Student: models.Student{ID: 42, FirstName: "Ana", LastName: "Quispe", Email: "ana.quispe@utp.edu.pe"},
		Courses: []models.Course{{ID: 7, Name: "Databases", Code: "DB101", Credits: 4}},
		Projects: []models.Project{
			{ID: "665f1c2e9b3a4d0012345678", Title: "IoT Campus"},
		},
	}
}

func TestReportCache_RoundTrip(t *testing.T) {
	cache, _ := setupReportCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, sampleReport()))

	got, err := cache.Get(ctx, 42)
	require.NoError(t, err)

	assert.Equal(t, int32(42), got.Student.ID)
	assert.Equal(t, "Ana", got.Student.FirstName)
	require.Len(t, got.Courses, 1)
	assert.Equal(t, "DB101", got.Courses[0].Code)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, "IoT Campus", got.Projects[0].Title)
}

func TestReportCache_Miss(t *testing.T) {
	cache, _ := setupReportCache(t)

	_, err := cache.Get(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrCacheMiss)
}

func TestReportCache_EntriesNeverExpire(t *testing.T) {
	cache, mr := setupReportCache(t)

	require.NoError(t, cache.Set(context.Background(), sampleReport()))

	key := ReportKey(42)
	assert.Equal(t, time.Duration(0), mr.TTL(key), "report entries carry no TTL")

	mr.FastForward(100 * 24 * time.Hour)

	_, err := cache.Get(context.Background(), 42)
	assert.NoError(t, err, "entry must survive until invalidated")
}

func TestReportCache_Invalidate(t *testing.T) {
	cache, _ := setupReportCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, sampleReport()))
	require.NoError(t, cache.Invalidate(ctx, 42))

	_, err := cache.Get(ctx, 42)
	assert.ErrorIs(t, err, apperrors.ErrCacheMiss)
}

func TestReportCache_InvalidateAbsentKeyIsNoop(t *testing.T) {
	cache, _ := setupReportCache(t)

	assert.NoError(t, cache.Invalidate(context.Background(), 12345))
}

func TestReportKey(t *testing.T) {
	assert.Equal(t, "report:42", ReportKey(42))
}
