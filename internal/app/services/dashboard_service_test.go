package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/utpgestion/academico/internal/pkg/apperrors"
)

type stubCounter struct {
	count int64
	err   error
}

func (s *stubCounter) Count(ctx context.Context) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.count, nil
}

func TestGetStats_AllStoresUp(t *testing.T) {
	service := NewDashboardService(
		&stubCounter{count: 120},
		&stubCounter{count: 35},
		&stubCounter{count: 12},
		&stubCounter{count: 18},
		zerolog.Nop(),
	)

	stats := service.GetStats(context.Background())

	assert.Equal(t, int64(120), stats.TotalStudents)
	assert.Equal(t, int64(35), stats.TotalCourses)
	assert.Equal(t, int64(12), stats.TotalProjects)
	assert.Equal(t, int64(18), stats.TotalProfessors)
}

func TestGetStats_FailingStoreCountsZero(t *testing.T) {
	courseErr := apperrors.NewStoreUnavailableError("course", errors.New("down"))

	service := NewDashboardService(
		&stubCounter{count: 120},
		&stubCounter{err: courseErr},
		&stubCounter{count: 12},
		&stubCounter{count: 18},
		zerolog.Nop(),
	)

	stats := service.GetStats(context.Background())

	assert.Equal(t, int64(120), stats.TotalStudents)
	assert.Equal(t, int64(0), stats.TotalCourses, "a failing store contributes zero")
	assert.Equal(t, int64(12), stats.TotalProjects)
	assert.Equal(t, int64(18), stats.TotalProfessors)
}

func TestGetStats_AllStoresDown(t *testing.T) {
	err := errors.New("network partition")

	service := NewDashboardService(
		&stubCounter{err: err},
		&stubCounter{err: err},
		&stubCounter{err: err},
		&stubCounter{err: err},
		zerolog.Nop(),
	)

	stats := service.GetStats(context.Background())

	assert.Equal(t, int64(0), stats.TotalStudents)
	assert.Equal(t, int64(0), stats.TotalCourses)
	assert.Equal(t, int64(0), stats.TotalProjects)
	assert.Equal(t, int64(0), stats.TotalProfessors)
}
