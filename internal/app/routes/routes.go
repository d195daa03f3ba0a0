package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/utpgestion/academico/internal/app/controllers"
	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	projectController *controllers.ProjectController,
	professorController *controllers.ProfessorController,
	reportController *controllers.ReportController,
	cacheController *controllers.CacheController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.SessionAuth())
	{
		authSession := authenticated.Group("/auth")
		{
			authSession.POST("/logout", authController.Logout)
			authSession.GET("/me", authController.GetSession)
			authSession.POST("/renew", authController.RenewSession)
		}

		// Reports are readable by every authenticated role.
		reports := authenticated.Group("/reports")
		{
			reports.GET("/student/:id", reportController.GetStudentReport)
			reports.GET("/dashboard", reportController.GetDashboard)

			reportsAdmin := reports.Group("")
			reportsAdmin.Use(authMiddleware.RequireRole(models.RoleAdmin))
			{
				reportsAdmin.DELETE("/student/:id/cache", reportController.InvalidateStudentReport)
			}
		}

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetStudents)
			students.GET("/:id", studentController.GetStudentByID)

			studentsAdmin := students.Group("")
			studentsAdmin.Use(authMiddleware.RequireRole(models.RoleAdmin))
			{
				studentsAdmin.POST("", studentController.CreateStudent)
				studentsAdmin.PUT("/:id", studentController.UpdateStudent)
				studentsAdmin.DELETE("/:id", studentController.DeleteStudent)
				studentsAdmin.PUT("/:id/courses", studentController.ReplaceStudentCourses)
				studentsAdmin.PUT("/:id/projects", studentController.ReplaceStudentProjects)
			}
		}

		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.GetCourses)
			courses.GET("/:id", courseController.GetCourseByID)

			coursesAdmin := courses.Group("")
			coursesAdmin.Use(authMiddleware.RequireRole(models.RoleAdmin, models.RoleProfessor))
			{
				coursesAdmin.POST("", courseController.CreateCourse)
				coursesAdmin.PUT("/:id", courseController.UpdateCourse)
				coursesAdmin.DELETE("/:id", courseController.DeleteCourse)
			}
		}

		projects := authenticated.Group("/projects")
		{
			projects.GET("", projectController.GetProjects)
			projects.GET("/:id", projectController.GetProjectByID)

			projectsAdmin := projects.Group("")
			projectsAdmin.Use(authMiddleware.RequireRole(models.RoleAdmin, models.RoleProfessor))
			{
				projectsAdmin.POST("", projectController.CreateProject)
				projectsAdmin.PUT("/:id", projectController.UpdateProject)
				projectsAdmin.DELETE("/:id", projectController.DeleteProject)
			}
		}

		professors := authenticated.Group("/professors")
		{
			professors.GET("", professorController.GetProfessors)
			professors.GET("/:id", professorController.GetProfessorByID)

			professorsAdmin := professors.Group("")
			professorsAdmin.Use(authMiddleware.RequireRole(models.RoleAdmin))
			{
				professorsAdmin.POST("", professorController.CreateProfessor)
				professorsAdmin.PUT("/:id", professorController.UpdateProfessor)
				professorsAdmin.PATCH("/:id/deactivate", professorController.DeactivateProfessor)
				professorsAdmin.DELETE("/:id", professorController.DeleteProfessor)
			}
		}

		cache := authenticated.Group("/cache")
		cache.Use(authMiddleware.RequireRole(models.RoleAdmin))
		{
			cache.POST("/set", cacheController.SetKey)
			cache.GET("/get", cacheController.GetKey)
			cache.DELETE("/:key", cacheController.DeleteKey)
		}
	}
}
