package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/app/models/dto"
	"github.com/utpgestion/academico/internal/app/repositories"
)

// ProfessorService handles professor operations on the professor store.
type ProfessorService struct {
	professors *repositories.ProfessorRepository
	logger     zerolog.Logger
}

// NewProfessorService creates a new professor service instance
func NewProfessorService(professors *repositories.ProfessorRepository, logger zerolog.Logger) *ProfessorService {
	return &ProfessorService{professors: professors, logger: logger}
}

// GetAll returns all professors, including deactivated ones.
func (s *ProfessorService) GetAll(ctx context.Context) ([]*models.Professor, error) {
	return s.professors.GetAll(ctx)
}

// ListActive returns only professors that have not been deactivated.
func (s *ProfessorService) ListActive(ctx context.Context) ([]*models.Professor, error) {
	return s.professors.ListActive(ctx)
}

// GetByID returns one professor by id
func (s *ProfessorService) GetByID(ctx context.Context, id string) (*models.Professor, error) {
	return s.professors.GetByID(ctx, id)
}

// Create inserts a new professor. New professors are active unless the
// request says otherwise.
func (s *ProfessorService) Create(ctx context.Context, req *dto.ProfessorRequest) (*models.Professor, error) {
	professor := professorFromRequest(req)
	professor.Active = true
	if req.Active != nil {
		professor.Active = *req.Active
	}

	if err := s.professors.Create(ctx, professor); err != nil {
		return nil, err
	}

	s.logger.Info().Str("professorId", professor.ID).Msg("Professor created")
	return professor, nil
}

// Update overwrites an existing professor's fields. An absent active flag
// keeps the stored value.
func (s *ProfessorService) Update(ctx context.Context, id string, req *dto.ProfessorRequest) (*models.Professor, error) {
	existing, err := s.professors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	professor := professorFromRequest(req)
	professor.ID = id
	professor.Active = existing.Active
	if req.Active != nil {
		professor.Active = *req.Active
	}

	if err := s.professors.Update(ctx, professor); err != nil {
		return nil, err
	}

	return professor, nil
}

// Deactivate marks a professor inactive without removing the row.
func (s *ProfessorService) Deactivate(ctx context.Context, id string) (*models.Professor, error) {
	professor, err := s.professors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	professor.Active = false
	if err := s.professors.Update(ctx, professor); err != nil {
		return nil, err
	}

	s.logger.Info().Str("professorId", id).Msg("Professor deactivated")
	return professor, nil
}

// Delete removes a professor row.
func (s *ProfessorService) Delete(ctx context.Context, id string) error {
	if err := s.professors.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("professorId", id).Msg("Professor deleted")
	return nil
}

func professorFromRequest(req *dto.ProfessorRequest) *models.Professor {
	return &models.Professor{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Specialty:       req.Specialty,
		Phone:           req.Phone,
		AcademicDegree:  req.AcademicDegree,
		YearsExperience: req.YearsExperience,
		CourseIDs:       req.CourseIDs,
	}
}
