package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/utpgestion/academico/internal/app/models/dto"
	"github.com/utpgestion/academico/internal/app/services"
	"github.com/utpgestion/academico/internal/middleware"
)

// AuthController handles login, logout and session inspection
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login authenticates a user and opens a session
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: response})
}

// Logout closes the caller's session
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	sessionID := ctx.GetString(middleware.ContextSession)

	existed, err := c.authService.Logout(ctx.Request.Context(), sessionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "session closed"
	if !existed {
		message = "no active session"
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: message}})
}

// GetSession describes the session the caller presented
// @Summary Inspect the current session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SessionInfo}
// @Failure 401 {object} dto.ErrorResponse "Session not found or expired"
// @Router /auth/me [get]
func (c *AuthController) GetSession(ctx *gin.Context) {
	sessionID := ctx.GetString(middleware.ContextSession)

	session, err := c.authService.Validate(ctx.Request.Context(), sessionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SessionInfo{
		Authenticated: true,
		Username:      session.Username,
		FullName:      session.FullName,
		Email:         session.Email,
		Role:          session.Role,
	}})
}

// RenewSession extends the caller's session expiry by the full TTL
// @Summary Renew the current session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 401 {object} dto.ErrorResponse "Session not found or expired"
// @Router /auth/renew [post]
func (c *AuthController) RenewSession(ctx *gin.Context) {
	sessionID := ctx.GetString(middleware.ContextSession)

	renewed, err := c.authService.Renew(ctx.Request.Context(), sessionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !renewed {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeSessionInvalid, "Session not found or expired")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "session renewed"}})
}
