package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/db"
	"github.com/utpgestion/academico/internal/pkg/apperrors"
)

// StudentRepository handles primary store operations: student rows and the
// student_course / student_project relation tables.
type StudentRepository struct {
	db *db.PostgresDB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{db: database}
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, first_name, last_name, email, birth_date
		FROM students
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("primary", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.Email,
			&student.BirthDate,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetByID retrieves a student by id. Returns ErrStudentNotFound when no row
// exists; any transport failure surfaces as ErrStoreUnavailable.
func (r *StudentRepository) GetByID(ctx context.Context, id int32) (*models.Student, error) {
	query := `
		SELECT id, first_name, last_name, email, birth_date
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.BirthDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, apperrors.NewStoreUnavailableError("primary", err)
	}

	return &student, nil
}

// Create inserts a new student; the id is assigned by the store's sequence.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (first_name, last_name, email, birth_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, query,
		student.FirstName, student.LastName, student.Email, student.BirthDate,
	).Scan(&student.ID)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// Update updates an existing student's own fields
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, email = $3, birth_date = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query,
		student.FirstName, student.LastName, student.Email, student.BirthDate, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student and its relation rows. Relations go first so no
// transient state has a relation row pointing at a deleted student.
func (r *StudentRepository) Delete(ctx context.Context, id int32) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM student_course WHERE student_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting course relations: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM student_project WHERE student_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting project relations: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting student: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		return nil
	})
}

// CourseIDs resolves the course ids related to a student, in the store's
// natural scan order. An unknown student yields an empty slice, not an error.
func (r *StudentRepository) CourseIDs(ctx context.Context, studentID int32) ([]int32, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT course_id FROM student_course WHERE student_id = $1`, studentID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("primary", err)
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError("primary", err)
	}

	return ids, nil
}

// ProjectIDs resolves the project ids related to a student. Project ids are
// opaque strings owned by the document store and are not validated here.
func (r *StudentRepository) ProjectIDs(ctx context.Context, studentID int32) ([]string, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT project_id FROM student_project WHERE student_id = $1`, studentID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("primary", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError("primary", err)
	}

	return ids, nil
}

// ReplaceCourseRelations replaces the student's course relation set with the
// given ids: delete everything, insert the new set. Inserts are idempotent
// (ON CONFLICT DO NOTHING on the pair's primary key). Two of these racing on
// the same student can interleave destructively; the store's row-level
// transaction semantics are the only protection, there is no application
// level lock.
func (r *StudentRepository) ReplaceCourseRelations(ctx context.Context, studentID int32, courseIDs []int32) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM student_course WHERE student_id = $1`, studentID); err != nil {
			return fmt.Errorf("error clearing course relations: %w", err)
		}

		for _, courseID := range courseIDs {
			_, err := tx.Exec(ctx, `
				INSERT INTO student_course (student_id, course_id)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING`, studentID, courseID)
			if err != nil {
				return fmt.Errorf("error inserting course relation: %w", err)
			}
		}

		return nil
	})
}

// ReplaceProjectRelations replaces the student's project relation set. Same
// full-replace semantics as ReplaceCourseRelations.
func (r *StudentRepository) ReplaceProjectRelations(ctx context.Context, studentID int32, projectIDs []string) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM student_project WHERE student_id = $1`, studentID); err != nil {
			return fmt.Errorf("error clearing project relations: %w", err)
		}

		for _, projectID := range projectIDs {
			_, err := tx.Exec(ctx, `
				INSERT INTO student_project (student_id, project_id)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING`, studentID, projectID)
			if err != nil {
				return fmt.Errorf("error inserting project relation: %w", err)
			}
		}

		return nil
	})
}

// Count returns the number of student rows
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, apperrors.NewStoreUnavailableError("primary", err)
	}
	return count, nil
}
