package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/db"
	"github.com/utpgestion/academico/internal/pkg/apperrors"
	"github.com/utpgestion/academico/internal/pkg/helpers"
)

// CourseRepository handles course store operations.
type CourseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(database *db.MySQLDB) *CourseRepository {
	return &CourseRepository{db: database.DB}
}

// newCourseRepositoryWithDB is used by tests to inject a raw handle.
func newCourseRepositoryWithDB(sqlDB *sql.DB) *CourseRepository {
	return &CourseRepository{db: sqlDB}
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, code, credits FROM courses`)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("course", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Name, &course.Code, &course.Credits); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByID retrieves a course by id
func (r *CourseRepository) GetByID(ctx context.Context, id int32) (*models.Course, error) {
	var course models.Course
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, code, credits FROM courses WHERE id = ?`, id).
		Scan(&course.ID, &course.Name, &course.Code, &course.Credits)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, apperrors.NewStoreUnavailableError("course", err)
	}

	return &course, nil
}

// GetByIDs retrieves courses for an id set with a single IN query. An empty
// set returns an empty slice without touching the store; ids with no matching
// row are simply absent from the result.
func (r *CourseRepository) GetByIDs(ctx context.Context, ids []int32) ([]models.Course, error) {
	if len(ids) == 0 {
		return []models.Course{}, nil
	}

	query := fmt.Sprintf(
		`SELECT id, name, code, credits FROM courses WHERE id IN (%s)`,
		helpers.Placeholders(len(ids)),
	)

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("course", err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0, len(ids))
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Name, &course.Code, &course.Credits); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Create inserts a new course; the id is assigned by the store.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO courses (name, code, credits) VALUES (?, ?, ?)`,
		course.Name, course.Code, course.Credits)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading inserted course id: %w", err)
	}
	course.ID = int32(id)

	return nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE courses SET name = ?, code = ?, credits = ? WHERE id = ?`,
		course.Name, course.Code, course.Credits, course.ID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course by id
func (r *CourseRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Count returns the number of course rows
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, apperrors.NewStoreUnavailableError("course", err)
	}
	return count, nil
}
