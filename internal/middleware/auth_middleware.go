package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/utpgestion/academico/internal/app/models/dto"
	"github.com/utpgestion/academico/internal/app/services"
)

// Context keys set by the session middleware.
const (
	ContextUsername = "username"
	ContextRole     = "role"
	ContextSession  = "sessionId"
)

// AuthMiddleware validates opaque session ids against the session store.
type AuthMiddleware struct {
	authService *services.AuthService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// SessionAuth rejects requests that do not carry a live session. The session
// id is read from the SESSION_ID cookie, the X-Session-Id header or a bearer
// Authorization header, in that order.
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := extractSessionID(c)
		if sessionID == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		session, err := m.authService.Validate(c.Request.Context(), sessionID)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeSessionInvalid, "Session not found or expired")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUsername, session.Username)
		c.Set(ContextRole, session.Role)
		c.Set(ContextSession, sessionID)
		c.Next()
	}
}

// RequireRole restricts a route to the given roles. Must run after
// SessionAuth.
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Insufficient role for this operation")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

func extractSessionID(c *gin.Context) string {
	if cookie, err := c.Cookie("SESSION_ID"); err == nil && cookie != "" {
		return cookie
	}

	if header := c.GetHeader("X-Session-Id"); header != "" {
		return header
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
