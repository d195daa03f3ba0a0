package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/pkg/apperrors"
)

func setupCourseRepo(t *testing.T) (*CourseRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return newCourseRepositoryWithDB(mockDB), mock
}

func TestCourseGetByID(t *testing.T) {
	repo, mock := setupCourseRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "code", "credits"}).
		AddRow(7, "Databases", "DB101", 4)
	mock.ExpectQuery(`SELECT id, name, code, credits FROM courses WHERE id = \?`).
		WithArgs(int32(7)).
		WillReturnRows(rows)

	course, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int32(7), course.ID)
	assert.Equal(t, "DB101", course.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseGetByID_NotFound(t *testing.T) {
	repo, mock := setupCourseRepo(t)

	mock.ExpectQuery(`SELECT id, name, code, credits FROM courses WHERE id = \?`).
		WithArgs(int32(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "credits"}))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCourseGetByIDs_Bulk(t *testing.T) {
	repo, mock := setupCourseRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "code", "credits"}).
		AddRow(7, "Databases", "DB101", 4).
		AddRow(9, "Networks", "NET201", 3)
	mock.ExpectQuery(`SELECT id, name, code, credits FROM courses WHERE id IN \(\?,\?,\?\)`).
		WithArgs(int32(7), int32(9), int32(11)).
		WillReturnRows(rows)

	// id 11 has no row; it is absent from the result, not an error.
	courses, err := repo.GetByIDs(context.Background(), []int32{7, 9, 11})
	require.NoError(t, err)

	require.Len(t, courses, 2)
	assert.Equal(t, "Databases", courses[0].Name)
	assert.Equal(t, "Networks", courses[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseGetByIDs_EmptySetSkipsQuery(t *testing.T) {
	repo, mock := setupCourseRepo(t)

	courses, err := repo.GetByIDs(context.Background(), nil)
	require.NoError(t, err)

	assert.NotNil(t, courses)
	assert.Empty(t, courses)
	assert.NoError(t, mock.ExpectationsWereMet(), "no query must reach the store")
}

func TestCourseCreate_AssignsID(t *testing.T) {
	repo, mock := setupCourseRepo(t)

	mock.ExpectExec(`INSERT INTO courses \(name, code, credits\) VALUES \(\?, \?, \?\)`).
		WithArgs("Databases", "DB101", 4).
		WillReturnResult(sqlmock.NewResult(7, 1))

	course := &models.Course{Name: "Databases", Code: "DB101", Credits: 4}
	require.NoError(t, repo.Create(context.Background(), course))

	assert.Equal(t, int32(7), course.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseUpdate_NotFound(t *testing.T) {
	repo, mock := setupCourseRepo(t)

	mock.ExpectExec(`UPDATE courses SET name = \?, code = \?, credits = \? WHERE id = \?`).
		WithArgs("Databases", "DB101", 4, int32(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Course{ID: 99, Name: "Databases", Code: "DB101", Credits: 4})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCourseDelete(t *testing.T) {
	repo, mock := setupCourseRepo(t)

	mock.ExpectExec(`DELETE FROM courses WHERE id = \?`).
		WithArgs(int32(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseCount(t *testing.T) {
	repo, mock := setupCourseRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM courses`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(35))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(35), count)
}
