package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/utpgestion/academico/internal/app/models/dto"
	"github.com/utpgestion/academico/internal/app/services"
	"github.com/utpgestion/academico/internal/middleware"
)

// ReportController exposes the integral report and the dashboard.
type ReportController struct {
	reportService    *services.ReportService
	dashboardService *services.DashboardService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService, dashboardService *services.DashboardService) *ReportController {
	return &ReportController{
		reportService:    reportService,
		dashboardService: dashboardService,
	}
}

// GetStudentReport returns the integral report for a student
// @Summary Get integral student report
// @Description Returns the student joined with its courses and research projects
// @Tags reports
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.IntegralReport}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 503 {object} dto.ErrorResponse "Primary store unavailable"
// @Router /reports/student/{id} [get]
func (c *ReportController) GetStudentReport(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	report, err := c.reportService.GetReport(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: report})
}

// InvalidateStudentReport drops the cached report for a student
// @Summary Invalidate a cached student report
// @Tags reports
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /reports/student/{id}/cache [delete]
func (c *ReportController) InvalidateStudentReport(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.reportService.Invalidate(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "report cache invalidated"}})
}

// GetDashboard returns entity counts across all stores
// @Summary Get dashboard statistics
// @Description Returns total students, courses, projects and professors
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStats}
// @Router /reports/dashboard [get]
func (c *ReportController) GetDashboard(ctx *gin.Context) {
	stats := c.dashboardService.GetStats(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats})
}

// parseID parses a decimal route parameter into an int32 id.
func parseID(raw string) (int32, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}
