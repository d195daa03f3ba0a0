package repositories

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/utpgestion/academico/internal/db"
)

// Repositories bundles one repository per backing store. Each store is
// independent; no repository reaches across store boundaries.
type Repositories struct {
	Student     *StudentRepository
	Course      *CourseRepository
	Project     *ProjectRepository
	Professor   *ProfessorRepository
	ReportCache *ReportCache
	Sessions    *SessionStore
}

// NewRepositories creates all repositories from the connected store adapters.
func NewRepositories(
	postgres *db.PostgresDB,
	mysql *db.MySQLDB,
	mongo *db.MongoDB,
	cassandra *db.CassandraDB,
	redisClient *redis.Client,
	sessionTTL time.Duration,
) *Repositories {
	return &Repositories{
		Student:     NewStudentRepository(postgres),
		Course:      NewCourseRepository(mysql),
		Project:     NewProjectRepository(mongo),
		Professor:   NewProfessorRepository(cassandra),
		ReportCache: NewReportCache(redisClient),
		Sessions:    NewSessionStore(redisClient, sessionTTL),
	}
}
