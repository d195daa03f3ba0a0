package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/db"
	"github.com/utpgestion/academico/internal/pkg/apperrors"
)

const projectCollection = "research_projects"

// ProjectRepository handles document store operations for research projects.
// Documents are keyed by an opaque string id assigned on create.
type ProjectRepository struct {
	collection *mongo.Collection
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(database *db.MongoDB) *ProjectRepository {
	return &ProjectRepository{
		collection: database.Database.Collection(projectCollection),
	}
}

// GetAll retrieves all projects
func (r *ProjectRepository) GetAll(ctx context.Context) ([]*models.Project, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("project", err)
	}
	defer cursor.Close(ctx)

	var projects []*models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("error decoding projects: %w", err)
	}

	return projects, nil
}

// GetByID retrieves one project by its string id. A missing document maps to
// ErrProjectNotFound so callers can tell a miss from a transport failure.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.NewStoreUnavailableError("project", err)
	}

	return &project, nil
}

// Create inserts a new project document, assigning a fresh id when none is set.
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	if project.ID == "" {
		project.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.collection.InsertOne(ctx, project); err != nil {
		return fmt.Errorf("error creating project: %w", err)
	}

	return nil
}

// Update replaces the mutable fields of an existing project document
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	update := bson.M{"$set": bson.M{
		"title":      project.Title,
		"summary":    project.Summary,
		"start_date": project.StartDate,
		"end_date":   project.EndDate,
	}}

	result, err := r.collection.UpdateByID(ctx, project.ID, update)
	if err != nil {
		return fmt.Errorf("error updating project: %w", err)
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}

// Delete removes a project document by id
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}

// Count returns the number of project documents
func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, apperrors.NewStoreUnavailableError("project", err)
	}
	return count, nil
}
