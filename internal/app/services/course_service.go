package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/app/models/dto"
	"github.com/utpgestion/academico/internal/app/repositories"
)

// CourseService handles course catalog operations on the course store.
type CourseService struct {
	courses *repositories.CourseRepository
	logger  zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courses *repositories.CourseRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{courses: courses, logger: logger}
}

// GetAll returns all courses
func (s *CourseService) GetAll(ctx context.Context) ([]*models.Course, error) {
	return s.courses.GetAll(ctx)
}

// GetByID returns one course by id
func (s *CourseService) GetByID(ctx context.Context, id int32) (*models.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// Create inserts a new course into the catalog.
func (s *CourseService) Create(ctx context.Context, req *dto.CourseRequest) (*models.Course, error) {
	course := &models.Course{
		Name:    req.Name,
		Code:    req.Code,
		Credits: req.Credits,
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Int32("courseId", course.ID).Str("code", course.Code).Msg("Course created")
	return course, nil
}

// Update overwrites an existing course's fields.
func (s *CourseService) Update(ctx context.Context, id int32, req *dto.CourseRequest) (*models.Course, error) {
	if _, err := s.courses.GetByID(ctx, id); err != nil {
		return nil, err
	}

	course := &models.Course{
		ID:      id,
		Name:    req.Name,
		Code:    req.Code,
		Credits: req.Credits,
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// Delete removes a course from the catalog. Relation rows pointing at the id
// stay in the primary store; reports simply stop resolving them.
func (s *CourseService) Delete(ctx context.Context, id int32) error {
	if _, err := s.courses.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int32("courseId", id).Msg("Course deleted")
	return nil
}
