package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/utpgestion/academico/internal/app/controllers"
	appMigrations "github.com/utpgestion/academico/internal/app/migrations"
	"github.com/utpgestion/academico/internal/app/models"
	appRepos "github.com/utpgestion/academico/internal/app/repositories"
	appRoutes "github.com/utpgestion/academico/internal/app/routes"
	appServices "github.com/utpgestion/academico/internal/app/services"
	"github.com/utpgestion/academico/internal/config"
	"github.com/utpgestion/academico/internal/db"
	appMiddleware "github.com/utpgestion/academico/internal/middleware"
	pkgAuth "github.com/utpgestion/academico/internal/pkg/auth"
	"github.com/utpgestion/academico/internal/pkg/logger"
)

// Stores holds the connected adapters for all backing stores.
type Stores struct {
	Postgres  *db.PostgresDB
	MySQL     *db.MySQLDB
	Mongo     *db.MongoDB
	Cassandra *db.CassandraDB
	Redis     *redis.Client
}

// Close releases all store connections. Safe to call with partially
// connected stores.
func (s *Stores) Close(lgr zerolog.Logger) {
	if s.Postgres != nil {
		s.Postgres.Close()
	}
	if s.MySQL != nil {
		if err := s.MySQL.Close(); err != nil {
			lgr.Warn().Err(err).Msg("Failed to close course store")
		}
	}
	if s.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := s.Mongo.Close(ctx); err != nil {
			lgr.Warn().Err(err).Msg("Failed to close project store")
		}
		cancel()
	}
	if s.Cassandra != nil {
		s.Cassandra.Close()
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			lgr.Warn().Err(err).Msg("Failed to close cache store")
		}
	}
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         *appServices.AuthService
	StudentService      *appServices.StudentService
	CourseService       *appServices.CourseService
	ProjectService      *appServices.ProjectService
	ProfessorService    *appServices.ProfessorService
	ReportService       *appServices.ReportService
	DashboardService    *appServices.DashboardService
	AuthController      *appControllers.AuthController
	StudentController   *appControllers.StudentController
	CourseController    *appControllers.CourseController
	ProjectController   *appControllers.ProjectController
	ProfessorController *appControllers.ProfessorController
	ReportController    *appControllers.ReportController
	CacheController     *appControllers.CacheController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStores connects every backing store and migrates the primary store.
// Each store is required at startup; a store that cannot be reached fails the
// boot rather than limping along without it.
func SetupStores(cfg *config.Config, lgr zerolog.Logger) (*Stores, error) {
	stores := &Stores{}

	lgr.Info().Msg("Connecting to primary store...")
	postgres, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to primary store")
		return nil, err
	}
	stores.Postgres = postgres

	if err := migratePrimaryStore(stores, lgr); err != nil {
		stores.Close(lgr)
		return nil, err
	}

	lgr.Info().Msg("Connecting to course store...")
	mysql, err := db.NewMySQLDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to course store")
		stores.Close(lgr)
		return nil, err
	}
	stores.MySQL = mysql

	lgr.Info().Msg("Connecting to project store...")
	mongo, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to project store")
		stores.Close(lgr)
		return nil, err
	}
	stores.Mongo = mongo

	lgr.Info().Msg("Connecting to professor store...")
	cassandra, err := db.NewCassandraDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to professor store")
		stores.Close(lgr)
		return nil, err
	}
	stores.Cassandra = cassandra

	lgr.Info().Msg("Connecting to cache store...")
	redisClient, err := db.NewRedisClient(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to cache store")
		stores.Close(lgr)
		return nil, err
	}
	stores.Redis = redisClient

	lgr.Info().Msg("All stores connected")
	return stores, nil
}

func migratePrimaryStore(stores *Stores, lgr zerolog.Logger) error {
	migrationsDir := filepath.Join("migrations", "postgres")
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Warn().Str("path", migrationsDir).Msg("Migrations directory not found, skipping")
		return nil
	}

	migrator := appMigrations.NewMigrator(stores.Postgres.Pool, lgr)
	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Primary store migration failed")
		return err
	}

	return nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, stores *Stores, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(
		stores.Postgres,
		stores.MySQL,
		stores.Mongo,
		stores.Cassandra,
		stores.Redis,
		cfg.SessionTTL(),
	)

	userTable, err := buildUserTable(cfg, lgr)
	if err != nil {
		return nil, err
	}

	deps.AuthService = appServices.NewAuthService(userTable, deps.Repos.Sessions, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.Student, deps.Repos.ReportCache, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.Course, lgr)
	deps.ProjectService = appServices.NewProjectService(deps.Repos.Project, lgr)
	deps.ProfessorService = appServices.NewProfessorService(deps.Repos.Professor, lgr)
	deps.ReportService = appServices.NewReportService(
		deps.Repos.Student,
		deps.Repos.Course,
		deps.Repos.Project,
		deps.Repos.ReportCache,
		lgr,
	)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.Student,
		deps.Repos.Course,
		deps.Repos.Project,
		deps.Repos.Professor,
		lgr,
	)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.ProjectController = appControllers.NewProjectController(deps.ProjectService)
	deps.ProfessorController = appControllers.NewProfessorController(deps.ProfessorService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService, deps.DashboardService)
	deps.CacheController = appControllers.NewCacheController(stores.Redis)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthService)

	return deps, nil
}

// buildUserTable hashes the configured users into the read-only table. With
// no users configured the API would be unreachable, so that fails the boot.
func buildUserTable(cfg *config.Config, lgr zerolog.Logger) (*appServices.UserTable, error) {
	users := make([]*models.User, 0, len(cfg.Auth.Users))
	for _, seed := range cfg.Auth.Users {
		hash, err := pkgAuth.HashPassword(seed.Password)
		if err != nil {
			return nil, err
		}

		role := strings.ToUpper(seed.Role)
		if role == "" {
			role = models.RoleUser
		}

		users = append(users, &models.User{
			Username:     seed.Username,
			PasswordHash: hash,
			Email:        seed.Email,
			FirstName:    seed.FirstName,
			LastName:     seed.LastName,
			Role:         role,
			Active:       true,
			CreatedAt:    time.Now(),
		})
	}

	lgr.Info().Int("users", len(users)).Msg("Authentication table built")
	return appServices.NewUserTable(users), nil
}

// SetupRouter creates the gin engine and registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.StudentController,
		deps.CourseController,
		deps.ProjectController,
		deps.ProfessorController,
		deps.ReportController,
		deps.CacheController,
		deps.AuthMiddleware,
	)

	return router
}
