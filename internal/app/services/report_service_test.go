package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/pkg/apperrors"
)

type fakeStudents struct {
	student    *models.Student
	studentErr error
	courseIDs  []int32
	projectIDs []string
	relErr     error
	getCalls   int
}

func (f *fakeStudents) GetByID(ctx context.Context, id int32) (*models.Student, error) {
	f.getCalls++
	if f.studentErr != nil {
		return nil, f.studentErr
	}
	return f.student, nil
}

func (f *fakeStudents) CourseIDs(ctx context.Context, studentID int32) ([]int32, error) {
	if f.relErr != nil {
		return nil, f.relErr
	}
	return f.courseIDs, nil
}

func (f *fakeStudents) ProjectIDs(ctx context.Context, studentID int32) ([]string, error) {
	if f.relErr != nil {
		return nil, f.relErr
	}
	return f.projectIDs, nil
}

type fakeCourses struct {
	courses []models.Course
	err     error
}

func (f *fakeCourses) GetByIDs(ctx context.Context, ids []int32) ([]models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.courses, nil
}

type fakeProjects struct {
	projects map[string]*models.Project
	errs     map[string]error
}

func (f *fakeProjects) GetByID(ctx context.Context, id string) (*models.Project, error) {
	if err, ok := f.errs[id]; ok {
		return nil, err
	}
	if project, ok := f.projects[id]; ok {
		return project, nil
	}
	return nil, apperrors.ErrProjectNotFound
}

type fakeCache struct {
	entries     map[int32]*models.IntegralReport
	getErr      error
	setCalls    int
	invalidated []int32
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[int32]*models.IntegralReport{}}
}

func (f *fakeCache) Get(ctx context.Context, studentID int32) (*models.IntegralReport, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if report, ok := f.entries[studentID]; ok {
		return report, nil
	}
	return nil, apperrors.ErrCacheMiss
}

func (f *fakeCache) Set(ctx context.Context, report *models.IntegralReport) error {
	f.setCalls++
	f.entries[report.Student.ID] = report
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context, studentID int32) error {
	f.invalidated = append(f.invalidated, studentID)
	delete(f.entries, studentID)
	return nil
}

func newTestReportService(students *fakeStudents, courses *fakeCourses, projects *fakeProjects, cache *fakeCache) *ReportService {
	return NewReportService(students, courses, projects, cache, zerolog.Nop())
}

func TestGetReport_BuildsAndCaches(t *testing.T) {
	students := &fakeStudents{
		student:    &models.Student{ID: 42, FirstName: "Ana", LastName: "Quispe", Email: "ana.quispe@utp.edu.pe"},
		courseIDs:  []int32{7, 9},
		projectIDs: []string{"p1"},
	}
	courses := &fakeCourses{courses: []models.Course{
		{ID: 7, Name: "Databases", Code: "DB101", Credits: 4},
		{ID: 9, Name: "Networks", Code: "NET201", Credits: 3},
	}}
	projects := &fakeProjects{projects: map[string]*models.Project{
		"p1": {ID: "p1", Title: "IoT Campus"},
	}}
	cache := newFakeCache()

	service := newTestReportService(students, courses, projects, cache)

	report, err := service.GetReport(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int32(42), report.Student.ID)
	assert.Len(t, report.Courses, 2)
	assert.Len(t, report.Projects, 1)
	assert.Equal(t, "IoT Campus", report.Projects[0].Title)

	assert.Equal(t, 1, cache.setCalls)
	_, ok := cache.entries[42]
	assert.True(t, ok, "report should be cached after a miss")
}

func TestGetReport_CacheHitSkipsStores(t *testing.T) {
	students := &fakeStudents{}
	cache := newFakeCache()
	cache.entries[42] = &models.IntegralReport{
		Student: models.Student{ID: 42, FirstName: "Ana"},
		Courses: []models.Course{{ID: 7}},
	}

	service := newTestReportService(students, &fakeCourses{}, &fakeProjects{}, cache)

	report, err := service.GetReport(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, "Ana", report.Student.FirstName)
	assert.Equal(t, 0, students.getCalls, "cache hit must not touch the primary store")
	assert.Equal(t, 0, cache.setCalls)
}

func TestGetReport_StudentNotFound(t *testing.T) {
	students := &fakeStudents{studentErr: apperrors.ErrStudentNotFound}
	cache := newFakeCache()

	service := newTestReportService(students, &fakeCourses{}, &fakeProjects{}, cache)

	_, err := service.GetReport(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Equal(t, 0, cache.setCalls, "negative results must not be cached")
}

func TestGetReport_PrimaryStoreUnavailable(t *testing.T) {
	storeErr := apperrors.NewStoreUnavailableError("primary", errors.New("connection refused"))
	students := &fakeStudents{studentErr: storeErr}

	service := newTestReportService(students, &fakeCourses{}, &fakeProjects{}, newFakeCache())

	_, err := service.GetReport(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestGetReport_EmptyRelations(t *testing.T) {
	students := &fakeStudents{
		student: &models.Student{ID: 1, FirstName: "Luis"},
	}

	service := newTestReportService(students, &fakeCourses{}, &fakeProjects{}, newFakeCache())

	report, err := service.GetReport(context.Background(), 1)
	require.NoError(t, err)

	assert.NotNil(t, report.Courses)
	assert.NotNil(t, report.Projects)
	assert.Empty(t, report.Courses)
	assert.Empty(t, report.Projects)
}

func TestGetReport_MissingProjectSkipped(t *testing.T) {
	students := &fakeStudents{
		student:    &models.Student{ID: 1},
		projectIDs: []string{"known", "gone", "broken"},
	}
	projects := &fakeProjects{
		projects: map[string]*models.Project{"known": {ID: "known", Title: "Known"}},
		errs:     map[string]error{"broken": errors.New("read timeout")},
	}

	service := newTestReportService(students, &fakeCourses{}, projects, newFakeCache())

	report, err := service.GetReport(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, report.Projects, 1)
	assert.Equal(t, "known", report.Projects[0].ID)
}

func TestGetReport_CourseStoreFailureDegradesToEmpty(t *testing.T) {
	students := &fakeStudents{
		student:   &models.Student{ID: 1},
		courseIDs: []int32{7, 9},
	}
	courses := &fakeCourses{err: apperrors.NewStoreUnavailableError("course", errors.New("down"))}

	service := newTestReportService(students, courses, &fakeProjects{}, newFakeCache())

	report, err := service.GetReport(context.Background(), 1)
	require.NoError(t, err, "a course store failure must not fail the report")
	assert.Empty(t, report.Courses)
}

func TestGetReport_BrokenCacheRebuilds(t *testing.T) {
	students := &fakeStudents{
		student: &models.Student{ID: 5, FirstName: "Rosa"},
	}
	cache := newFakeCache()
	cache.getErr = errors.New("cache store down")

	service := newTestReportService(students, &fakeCourses{}, &fakeProjects{}, cache)

	report, err := service.GetReport(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Rosa", report.Student.FirstName)
}

func TestInvalidate_Delegates(t *testing.T) {
	cache := newFakeCache()
	cache.entries[42] = &models.IntegralReport{Student: models.Student{ID: 42}}

	service := newTestReportService(&fakeStudents{}, &fakeCourses{}, &fakeProjects{}, cache)

	require.NoError(t, service.Invalidate(context.Background(), 42))
	assert.Equal(t, []int32{42}, cache.invalidated)
	_, ok := cache.entries[42]
	assert.False(t, ok)
}
