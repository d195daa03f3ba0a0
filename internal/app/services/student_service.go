package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/app/models/dto"
	"github.com/utpgestion/academico/internal/pkg/apperrors"
)

const birthDateLayout = "2006-01-02"

// StudentStore is the full primary-store surface the student service needs.
type StudentStore interface {
	StudentSource
	GetAll(ctx context.Context) ([]*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int32) error
	ReplaceCourseRelations(ctx context.Context, studentID int32, courseIDs []int32) error
	ReplaceProjectRelations(ctx context.Context, studentID int32, projectIDs []string) error
}

// ReportInvalidator drops a student's cached report.
type ReportInvalidator interface {
	Invalidate(ctx context.Context, studentID int32) error
}

// StudentService handles student CRUD and relation management on the primary
// store. Every mutation invalidates the student's cached report before the
// call returns, so a successful response guarantees no reader can still see
// the pre-mutation report from cache.
type StudentService struct {
	students StudentStore
	reports  ReportInvalidator
	logger   zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore, reports ReportInvalidator, logger zerolog.Logger) *StudentService {
	return &StudentService{
		students: students,
		reports:  reports,
		logger:   logger,
	}
}

// GetAll returns all students with their relation id sets resolved.
func (s *StudentService) GetAll(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		response, err := s.toResponse(ctx, student)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *response)
	}

	return responses, nil
}

// GetByID returns one student with its relation id sets resolved.
func (s *StudentService) GetByID(ctx context.Context, id int32) (*dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, student)
}

// Create inserts a new student and, when the request carries relation sets,
// installs them. The fresh id cannot have a cached report from before the
// insert, but a concurrent report read may race the relation writes, so the
// cache entry is dropped before returning anyway.
func (s *StudentService) Create(ctx context.Context, req *dto.StudentRequest) (*dto.StudentResponse, error) {
	student, err := studentFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	if err := s.replaceRelations(ctx, student.ID, req); err != nil {
		return nil, err
	}

	if err := s.reports.Invalidate(ctx, student.ID); err != nil {
		return nil, err
	}

	s.logger.Info().Int32("studentId", student.ID).Msg("Student created")
	return s.toResponse(ctx, student)
}

// Update overwrites a student's fields and, when the request carries relation
// sets, replaces them. The cached report is invalidated before returning.
func (s *StudentService) Update(ctx context.Context, id int32, req *dto.StudentRequest) (*dto.StudentResponse, error) {
	if _, err := s.students.GetByID(ctx, id); err != nil {
		return nil, err
	}

	student, err := studentFromRequest(req)
	if err != nil {
		return nil, err
	}
	student.ID = id

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	if err := s.replaceRelations(ctx, id, req); err != nil {
		return nil, err
	}

	if err := s.reports.Invalidate(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info().Int32("studentId", id).Msg("Student updated")
	return s.toResponse(ctx, student)
}

// Delete removes a student together with its relation rows, then drops the
// cached report.
func (s *StudentService) Delete(ctx context.Context, id int32) error {
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.reports.Invalidate(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int32("studentId", id).Msg("Student deleted")
	return nil
}

// ReplaceCourses replaces the student's course relation set and invalidates
// the cached report.
func (s *StudentService) ReplaceCourses(ctx context.Context, id int32, courseIDs []int32) error {
	if _, err := s.students.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.students.ReplaceCourseRelations(ctx, id, courseIDs); err != nil {
		return err
	}

	return s.reports.Invalidate(ctx, id)
}

// ReplaceProjects replaces the student's project relation set and invalidates
// the cached report.
func (s *StudentService) ReplaceProjects(ctx context.Context, id int32, projectIDs []string) error {
	if _, err := s.students.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.students.ReplaceProjectRelations(ctx, id, projectIDs); err != nil {
		return err
	}

	return s.reports.Invalidate(ctx, id)
}

// replaceRelations installs the relation sets a request carries. A nil slice
// means the caller did not touch that relation set.
func (s *StudentService) replaceRelations(ctx context.Context, id int32, req *dto.StudentRequest) error {
	if req.CourseIDs != nil {
		if err := s.students.ReplaceCourseRelations(ctx, id, req.CourseIDs); err != nil {
			return err
		}
	}
	if req.ProjectIDs != nil {
		if err := s.students.ReplaceProjectRelations(ctx, id, req.ProjectIDs); err != nil {
			return err
		}
	}
	return nil
}

func (s *StudentService) toResponse(ctx context.Context, student *models.Student) (*dto.StudentResponse, error) {
	courseIDs, err := s.students.CourseIDs(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	projectIDs, err := s.students.ProjectIDs(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	response := &dto.StudentResponse{
		ID:         student.ID,
		FirstName:  student.FirstName,
		LastName:   student.LastName,
		Email:      student.Email,
		CourseIDs:  courseIDs,
		ProjectIDs: projectIDs,
	}
	if student.BirthDate != nil {
		response.BirthDate = student.BirthDate.Format(birthDateLayout)
	}

	return response, nil
}

func studentFromRequest(req *dto.StudentRequest) (*models.Student, error) {
	student := &models.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	if req.BirthDate != "" {
		birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("birthDate must use the YYYY-MM-DD format")
		}
		student.BirthDate = &birthDate
	}

	return student, nil
}
