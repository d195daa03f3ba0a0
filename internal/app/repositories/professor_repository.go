package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/gocql/gocql"

	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/db"
	"github.com/utpgestion/academico/internal/pkg/apperrors"
)

// ProfessorRepository handles professor store operations. Ids are
// client-assigned UUIDs, which fits the store's masterless writes.
type ProfessorRepository struct {
	session *gocql.Session
}

// NewProfessorRepository creates a new professor repository
func NewProfessorRepository(database *db.CassandraDB) *ProfessorRepository {
	return &ProfessorRepository{session: database.Session}
}

func scanProfessor(scanner gocql.Scanner) (*models.Professor, error) {
	var (
		professor models.Professor
		id        gocql.UUID
	)

	err := scanner.Scan(
		&id,
		&professor.FirstName,
		&professor.LastName,
		&professor.Email,
		&professor.Specialty,
		&professor.Phone,
		&professor.AcademicDegree,
		&professor.YearsExperience,
		&professor.Active,
		&professor.CourseIDs,
	)
	if err != nil {
		return nil, err
	}

	professor.ID = id.String()
	return &professor, nil
}

const professorColumns = `id, first_name, last_name, email, specialty, phone, academic_degree, years_experience, active, course_ids`

// GetAll retrieves all professors
func (r *ProfessorRepository) GetAll(ctx context.Context) ([]*models.Professor, error) {
	scanner := r.session.Query(
		`SELECT `+professorColumns+` FROM professors`).
		WithContext(ctx).Iter().Scanner()

	var professors []*models.Professor
	for scanner.Next() {
		professor, err := scanProfessor(scanner)
		if err != nil {
			return nil, fmt.Errorf("error scanning professor: %w", err)
		}
		professors = append(professors, professor)
	}

	if err := scanner.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError("professor", err)
	}

	return professors, nil
}

// ListActive retrieves professors that have not been deactivated
func (r *ProfessorRepository) ListActive(ctx context.Context) ([]*models.Professor, error) {
	scanner := r.session.Query(
		`SELECT `+professorColumns+` FROM professors WHERE active = true ALLOW FILTERING`).
		WithContext(ctx).Iter().Scanner()

	var professors []*models.Professor
	for scanner.Next() {
		professor, err := scanProfessor(scanner)
		if err != nil {
			return nil, fmt.Errorf("error scanning professor: %w", err)
		}
		professors = append(professors, professor)
	}

	if err := scanner.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError("professor", err)
	}

	return professors, nil
}

// GetByID retrieves a professor by id
func (r *ProfessorRepository) GetByID(ctx context.Context, id string) (*models.Professor, error) {
	uuid, err := gocql.ParseUUID(id)
	if err != nil {
		return nil, apperrors.ErrProfessorNotFound
	}

	var (
		professor models.Professor
		rowID     gocql.UUID
	)

	err = r.session.Query(
		`SELECT `+professorColumns+` FROM professors WHERE id = ?`, uuid).
		WithContext(ctx).Scan(
		&rowID,
		&professor.FirstName,
		&professor.LastName,
		&professor.Email,
		&professor.Specialty,
		&professor.Phone,
		&professor.AcademicDegree,
		&professor.YearsExperience,
		&professor.Active,
		&professor.CourseIDs,
	)

	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, apperrors.ErrProfessorNotFound
		}
		return nil, apperrors.NewStoreUnavailableError("professor", err)
	}

	professor.ID = rowID.String()
	return &professor, nil
}

// Create inserts a new professor, assigning a fresh UUID when none is set.
func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor) error {
	if professor.ID == "" {
		professor.ID = gocql.TimeUUID().String()
	}

	uuid, err := gocql.ParseUUID(professor.ID)
	if err != nil {
		return apperrors.NewBadRequestError("invalid professor id")
	}

	err = r.session.Query(`
		INSERT INTO professors (`+professorColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid,
		professor.FirstName,
		professor.LastName,
		professor.Email,
		professor.Specialty,
		professor.Phone,
		professor.AcademicDegree,
		professor.YearsExperience,
		professor.Active,
		professor.CourseIDs,
	).WithContext(ctx).Exec()

	if err != nil {
		return fmt.Errorf("error creating professor: %w", err)
	}

	return nil
}

// Update overwrites an existing professor row. The row must exist; the store
// itself would otherwise upsert silently.
func (r *ProfessorRepository) Update(ctx context.Context, professor *models.Professor) error {
	if _, err := r.GetByID(ctx, professor.ID); err != nil {
		return err
	}

	uuid, err := gocql.ParseUUID(professor.ID)
	if err != nil {
		return apperrors.ErrProfessorNotFound
	}

	err = r.session.Query(`
		UPDATE professors
		SET first_name = ?, last_name = ?, email = ?, specialty = ?, phone = ?,
		    academic_degree = ?, years_experience = ?, active = ?, course_ids = ?
		WHERE id = ?`,
		professor.FirstName,
		professor.LastName,
		professor.Email,
		professor.Specialty,
		professor.Phone,
		professor.AcademicDegree,
		professor.YearsExperience,
		professor.Active,
		professor.CourseIDs,
		uuid,
	).WithContext(ctx).Exec()

	if err != nil {
		return fmt.Errorf("error updating professor: %w", err)
	}

	return nil
}

// Delete removes a professor row by id
func (r *ProfessorRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	uuid, err := gocql.ParseUUID(id)
	if err != nil {
		return apperrors.ErrProfessorNotFound
	}

	err = r.session.Query(`DELETE FROM professors WHERE id = ?`, uuid).
		WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("error deleting professor: %w", err)
	}

	return nil
}

// Count returns the number of professor rows
func (r *ProfessorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.session.Query(`SELECT COUNT(*) FROM professors`).
		WithContext(ctx).Scan(&count)
	if err != nil {
		return 0, apperrors.NewStoreUnavailableError("professor", err)
	}
	return count, nil
}
