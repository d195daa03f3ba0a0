package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/app/models/dto"
	"github.com/utpgestion/academico/internal/pkg/apperrors"
)

type stubStudentStore struct {
	students   map[int32]*models.Student
	nextID     int32
	courseRels map[int32][]int32
	projRels   map[int32][]string

	// mutationLog records the order of mutating calls, used to assert that
	// cache invalidation happens after the store mutation.
	mutationLog []string
}

func newStubStudentStore() *stubStudentStore {
	return &stubStudentStore{
		students:   map[int32]*models.Student{},
		nextID:     1,
		courseRels: map[int32][]int32{},
		projRels:   map[int32][]string{},
	}
}

func (s *stubStudentStore) GetAll(ctx context.Context) ([]*models.Student, error) {
	var all []*models.Student
	for _, student := range s.students {
		all = append(all, student)
	}
	return all, nil
}

func (s *stubStudentStore) GetByID(ctx context.Context, id int32) (*models.Student, error) {
	if student, ok := s.students[id]; ok {
		return student, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *stubStudentStore) Create(ctx context.Context, student *models.Student) error {
	student.ID = s.nextID
	s.nextID++
	s.students[student.ID] = student
	s.mutationLog = append(s.mutationLog, "create")
	return nil
}

func (s *stubStudentStore) Update(ctx context.Context, student *models.Student) error {
	if _, ok := s.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	s.students[student.ID] = student
	s.mutationLog = append(s.mutationLog, "update")
	return nil
}

func (s *stubStudentStore) Delete(ctx context.Context, id int32) error {
	if _, ok := s.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(s.students, id)
	delete(s.courseRels, id)
	delete(s.projRels, id)
	s.mutationLog = append(s.mutationLog, "delete")
	return nil
}

func (s *stubStudentStore) CourseIDs(ctx context.Context, studentID int32) ([]int32, error) {
	return s.courseRels[studentID], nil
}

func (s *stubStudentStore) ProjectIDs(ctx context.Context, studentID int32) ([]string, error) {
	return s.projRels[studentID], nil
}

func (s *stubStudentStore) ReplaceCourseRelations(ctx context.Context, studentID int32, courseIDs []int32) error {
	s.courseRels[studentID] = courseIDs
	s.mutationLog = append(s.mutationLog, "replaceCourses")
	return nil
}

func (s *stubStudentStore) ReplaceProjectRelations(ctx context.Context, studentID int32, projectIDs []string) error {
	s.projRels[studentID] = projectIDs
	s.mutationLog = append(s.mutationLog, "replaceProjects")
	return nil
}

type stubInvalidator struct {
	store *stubStudentStore
	calls []int32
}

func (s *stubInvalidator) Invalidate(ctx context.Context, studentID int32) error {
	s.calls = append(s.calls, studentID)
	if s.store != nil {
		s.store.mutationLog = append(s.store.mutationLog, "invalidate")
	}
	return nil
}

func newTestStudentService() (*StudentService, *stubStudentStore, *stubInvalidator) {
	store := newStubStudentStore()
	invalidator := &stubInvalidator{store: store}
	return NewStudentService(store, invalidator, zerolog.Nop()), store, invalidator
}

func TestStudentCreate_WithRelations(t *testing.T) {
	service, store, invalidator := newTestStudentService()

	response, err := service.Create(context.Background(), &dto.StudentRequest{
		FirstName:  "Ana",
		LastName:   "Quispe",
		Email:      "ana.quispe@utp.edu.pe",
		BirthDate:  "2001-03-14",
		CourseIDs:  []int32{7, 9},
		ProjectIDs: []string{"p1"},
	})
	require.NoError(t, err)

	assert.Equal(t, int32(1), response.ID)
	assert.Equal(t, "2001-03-14", response.BirthDate)
	assert.Equal(t, []int32{7, 9}, store.courseRels[1])
	assert.Equal(t, []string{"p1"}, store.projRels[1])
	assert.Equal(t, []int32{1}, invalidator.calls)
}

func TestStudentCreate_InvalidBirthDate(t *testing.T) {
	service, store, _ := newTestStudentService()

	_, err := service.Create(context.Background(), &dto.StudentRequest{
		FirstName: "Ana",
		LastName:  "Quispe",
		Email:     "ana@utp.edu.pe",
		BirthDate: "14/03/2001",
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Empty(t, store.students)
}

func TestStudentUpdate_InvalidatesAfterMutation(t *testing.T) {
	service, store, invalidator := newTestStudentService()
	store.students[1] = &models.Student{ID: 1, FirstName: "Ana", Email: "ana@utp.edu.pe"}
	store.nextID = 2

	_, err := service.Update(context.Background(), 1, &dto.StudentRequest{
		FirstName: "Ana Maria",
		LastName:  "Quispe",
		Email:     "ana@utp.edu.pe",
		CourseIDs: []int32{3},
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Maria", store.students[1].FirstName)
	assert.Equal(t, []int32{1}, invalidator.calls)
	assert.Equal(t, []string{"update", "replaceCourses", "invalidate"}, store.mutationLog)
}

func TestStudentUpdate_NilRelationsLeaveStoreUntouched(t *testing.T) {
	service, store, _ := newTestStudentService()
	store.students[1] = &models.Student{ID: 1, Email: "a@utp.edu.pe"}
	store.courseRels[1] = []int32{7}
	store.projRels[1] = []string{"p1"}
	store.nextID = 2

	_, err := service.Update(context.Background(), 1, &dto.StudentRequest{
		FirstName: "Ana",
		LastName:  "Quispe",
		Email:     "a@utp.edu.pe",
	})
	require.NoError(t, err)

	assert.Equal(t, []int32{7}, store.courseRels[1])
	assert.Equal(t, []string{"p1"}, store.projRels[1])
}

func TestStudentUpdate_NotFound(t *testing.T) {
	service, _, invalidator := newTestStudentService()

	_, err := service.Update(context.Background(), 99, &dto.StudentRequest{
		FirstName: "Nadie",
		LastName:  "Nadie",
		Email:     "n@utp.edu.pe",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Empty(t, invalidator.calls)
}

func TestStudentDelete_Invalidates(t *testing.T) {
	service, store, invalidator := newTestStudentService()
	store.students[1] = &models.Student{ID: 1}
	store.courseRels[1] = []int32{7}

	require.NoError(t, service.Delete(context.Background(), 1))

	assert.Empty(t, store.students)
	assert.Empty(t, store.courseRels)
	assert.Equal(t, []int32{1}, invalidator.calls)
	assert.Equal(t, []string{"delete", "invalidate"}, store.mutationLog)
}

func TestReplaceCourses_Idempotent(t *testing.T) {
	service, store, invalidator := newTestStudentService()
	store.students[1] = &models.Student{ID: 1}

	require.NoError(t, service.ReplaceCourses(context.Background(), 1, []int32{7, 9}))
	require.NoError(t, service.ReplaceCourses(context.Background(), 1, []int32{7, 9}))

	assert.Equal(t, []int32{7, 9}, store.courseRels[1])
	assert.Equal(t, []int32{1, 1}, invalidator.calls)
}

func TestReplaceProjects_EmptySetClears(t *testing.T) {
	service, store, _ := newTestStudentService()
	store.students[1] = &models.Student{ID: 1}
	store.projRels[1] = []string{"p1", "p2"}

	require.NoError(t, service.ReplaceProjects(context.Background(), 1, []string{}))

	assert.Empty(t, store.projRels[1])
}
