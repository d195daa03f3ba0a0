package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/pkg/apperrors"
)

// StudentSource is the slice of the primary store the report builder needs:
// the student row and the two relation tables.
type StudentSource interface {
	GetByID(ctx context.Context, id int32) (*models.Student, error)
	CourseIDs(ctx context.Context, studentID int32) ([]int32, error)
	ProjectIDs(ctx context.Context, studentID int32) ([]string, error)
}

// CourseSource resolves course ids against the course store in bulk.
type CourseSource interface {
	GetByIDs(ctx context.Context, ids []int32) ([]models.Course, error)
}

// ProjectSource resolves one project id against the document store.
type ProjectSource interface {
	GetByID(ctx context.Context, id string) (*models.Project, error)
}

// ReportCacheStore holds materialized reports keyed by student id.
type ReportCacheStore interface {
	Get(ctx context.Context, studentID int32) (*models.IntegralReport, error)
	Set(ctx context.Context, report *models.IntegralReport) error
	Invalidate(ctx context.Context, studentID int32) error
}

// ReportService builds the integral student report: the student row joined
// with its resolved courses and projects across three stores, behind a
// read-through cache.
//
// Failure policy: the primary store is required, so its errors propagate.
// The course and project stores are best-effort; anything that cannot be
// fetched from them is omitted from the report, never fatal.
type ReportService struct {
	students StudentSource
	courses  CourseSource
	projects ProjectSource
	cache    ReportCacheStore
	logger   zerolog.Logger
}

// NewReportService creates a new report service instance
func NewReportService(
	students StudentSource,
	courses CourseSource,
	projects ProjectSource,
	cache ReportCacheStore,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		students: students,
		courses:  courses,
		projects: projects,
		cache:    cache,
		logger:   logger,
	}
}

// GetReport returns the integral report for a student. A cached entry is
// returned as-is with no staleness check; on a miss the report is rebuilt
// from the stores and written back to the cache before returning. Negative
// results are never cached.
func (s *ReportService) GetReport(ctx context.Context, studentID int32) (*models.IntegralReport, error) {
	cached, err := s.cache.Get(ctx, studentID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, apperrors.ErrCacheMiss) {
		// A broken cache degrades to a rebuild, it must not fail the read.
		s.logger.Warn().Err(err).Int32("studentId", studentID).Msg("Report cache lookup failed, rebuilding")
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	courseIDs, err := s.students.CourseIDs(ctx, studentID)
	if err != nil {
		return nil, err
	}

	projectIDs, err := s.students.ProjectIDs(ctx, studentID)
	if err != nil {
		return nil, err
	}

	// The two joins touch different stores and have no ordering dependency.
	var (
		courses  []models.Course
		projects []models.Project
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		courses = s.fetchCourses(gctx, studentID, courseIDs)
		return nil
	})
	g.Go(func() error {
		projects = s.fetchProjects(gctx, studentID, projectIDs)
		return nil
	})
	_ = g.Wait()

	report := &models.IntegralReport{
		Student:  *student,
		Courses:  courses,
		Projects: projects,
	}

	if err := s.cache.Set(ctx, report); err != nil {
		s.logger.Warn().Err(err).Int32("studentId", studentID).Msg("Failed to populate report cache")
	}

	return report, nil
}

// fetchCourses bulk-resolves course ids. Ids without a matching course row
// are absent from the result; a course store failure degrades the whole list
// to empty rather than failing the report.
func (s *ReportService) fetchCourses(ctx context.Context, studentID int32, ids []int32) []models.Course {
	courses, err := s.courses.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Int32("studentId", studentID).Msg("Failed to fetch courses for report")
		return []models.Course{}
	}
	if courses == nil {
		return []models.Course{}
	}
	return courses
}

// fetchProjects resolves project ids one by one; the document store has no
// bulk lookup. A missing document is skipped silently, a transport error is
// logged and skipped. One bad project id never fails the report.
func (s *ReportService) fetchProjects(ctx context.Context, studentID int32, ids []string) []models.Project {
	projects := make([]models.Project, 0, len(ids))
	for _, id := range ids {
		project, err := s.projects.GetByID(ctx, id)
		if err != nil {
			if !errors.Is(err, apperrors.ErrProjectNotFound) {
				s.logger.Error().Err(err).
					Int32("studentId", studentID).
					Str("projectId", id).
					Msg("Failed to fetch project for report")
			}
			continue
		}
		projects = append(projects, *project)
	}
	return projects
}

// Invalidate drops the student's cached report. Every mutation path for a
// student, its course relations or its project relations must call this
// before reporting success to its caller.
func (s *ReportService) Invalidate(ctx context.Context, studentID int32) error {
	return s.cache.Invalidate(ctx, studentID)
}
