package services

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/utpgestion/academico/internal/app/models/dto"
)

// StoreCounter counts the rows of one backing store.
type StoreCounter interface {
	Count(ctx context.Context) (int64, error)
}

// DashboardService aggregates entity counts across all four data stores.
// Counts are independent reads; a store that cannot answer contributes zero
// instead of failing the whole dashboard.
type DashboardService struct {
	students   StoreCounter
	courses    StoreCounter
	projects   StoreCounter
	professors StoreCounter
	logger     zerolog.Logger
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	students StoreCounter,
	courses StoreCounter,
	projects StoreCounter,
	professors StoreCounter,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		students:   students,
		courses:    courses,
		projects:   projects,
		professors: professors,
		logger:     logger,
	}
}

// GetStats returns the per-entity totals. All four counts run concurrently.
func (s *DashboardService) GetStats(ctx context.Context) *dto.DashboardStats {
	stats := &dto.DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats.TotalStudents = s.countStore(gctx, "student", s.students)
		return nil
	})
	g.Go(func() error {
		stats.TotalCourses = s.countStore(gctx, "course", s.courses)
		return nil
	})
	g.Go(func() error {
		stats.TotalProjects = s.countStore(gctx, "project", s.projects)
		return nil
	})
	g.Go(func() error {
		stats.TotalProfessors = s.countStore(gctx, "professor", s.professors)
		return nil
	})
	_ = g.Wait()

	return stats
}

func (s *DashboardService) countStore(ctx context.Context, name string, counter StoreCounter) int64 {
	count, err := counter.Count(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("store", name).Msg("Failed to count store rows for dashboard")
		return 0
	}
	return count
}
