package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/app/models/dto"
	"github.com/utpgestion/academico/internal/app/repositories"
)

// ProjectService handles research project operations on the document store.
type ProjectService struct {
	projects *repositories.ProjectRepository
	logger   zerolog.Logger
}

// NewProjectService creates a new project service instance
func NewProjectService(projects *repositories.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, logger: logger}
}

// GetAll returns all research projects
func (s *ProjectService) GetAll(ctx context.Context) ([]*models.Project, error) {
	return s.projects.GetAll(ctx)
}

// GetByID returns one project by id
func (s *ProjectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	return s.projects.GetByID(ctx, id)
}

// Create inserts a new project document; the store assigns the id.
func (s *ProjectService) Create(ctx context.Context, req *dto.ProjectRequest) (*models.Project, error) {
	project := &models.Project{
		Title:     req.Title,
		Summary:   req.Summary,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info().Str("projectId", project.ID).Msg("Project created")
	return project, nil
}

// Update overwrites an existing project document's fields.
func (s *ProjectService) Update(ctx context.Context, id string, req *dto.ProjectRequest) (*models.Project, error) {
	project := &models.Project{
		ID:        id,
		Title:     req.Title,
		Summary:   req.Summary,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes a project document. Relation rows pointing at the id stay in
// the primary store; reports simply stop resolving them.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("projectId", id).Msg("Project deleted")
	return nil
}
