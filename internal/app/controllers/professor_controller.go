package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/utpgestion/academico/internal/app/models/dto"
	"github.com/utpgestion/academico/internal/app/services"
	"github.com/utpgestion/academico/internal/middleware"
)

// ProfessorController handles professor operations
type ProfessorController struct {
	professorService *services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService *services.ProfessorService) *ProfessorController {
	return &ProfessorController{professorService: professorService}
}

// GetProfessors lists professors; ?active=true narrows to active ones
// @Summary List professors
// @Tags professors
// @Produce json
// @Param active query bool false "Only active professors"
// @Success 200 {object} dto.APIResponse{data=[]models.Professor}
// @Router /professors [get]
func (c *ProfessorController) GetProfessors(ctx *gin.Context) {
	var err error
	var professors interface{}

	if ctx.Query("active") == "true" {
		professors, err = c.professorService.ListActive(ctx.Request.Context())
	} else {
		professors, err = c.professorService.GetAll(ctx.Request.Context())
	}

	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: professors})
}

// GetProfessorByID retrieves a professor by ID
// @Summary Get professor by ID
// @Tags professors
// @Produce json
// @Param id path string true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=models.Professor}
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{id} [get]
func (c *ProfessorController) GetProfessorByID(ctx *gin.Context) {
	professor, err := c.professorService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: professor})
}

// CreateProfessor handles professor creation
// @Summary Create a new professor
// @Tags professors
// @Accept json
// @Produce json
// @Param request body dto.ProfessorRequest true "Professor information"
// @Success 201 {object} dto.APIResponse{data=models.Professor}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /professors [post]
func (c *ProfessorController) CreateProfessor(ctx *gin.Context) {
	var req dto.ProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid professor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	professor, err := c.professorService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: professor})
}

// UpdateProfessor overwrites a professor's fields
// @Summary Update a professor
// @Tags professors
// @Accept json
// @Produce json
// @Param id path string true "Professor ID"
// @Param request body dto.ProfessorRequest true "Professor information"
// @Success 200 {object} dto.APIResponse{data=models.Professor}
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{id} [put]
func (c *ProfessorController) UpdateProfessor(ctx *gin.Context) {
	var req dto.ProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid professor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	professor, err := c.professorService.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: professor})
}

// DeactivateProfessor marks a professor inactive without removing the row
// @Summary Deactivate a professor
// @Tags professors
// @Produce json
// @Param id path string true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=models.Professor}
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{id}/deactivate [patch]
func (c *ProfessorController) DeactivateProfessor(ctx *gin.Context) {
	professor, err := c.professorService.Deactivate(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: professor})
}

// DeleteProfessor removes a professor
// @Summary Delete a professor
// @Tags professors
// @Produce json
// @Param id path string true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{id} [delete]
func (c *ProfessorController) DeleteProfessor(ctx *gin.Context) {
	if err := c.professorService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "professor deleted"}})
}
