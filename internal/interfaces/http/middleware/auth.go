package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"openfare/internal/infrastructure/auth"
	"openfare/internal/shared/constants"
	"openfare/internal/shared/logger"
	"openfare/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth validates the session token from the auth cookie, falling back
// to a bearer Authorization header, and stores the caller's identity on the
// request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Validate(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserEmail, claims.Email)
		// Stored as a plain string so role gates can read it with GetString.
		c.Set(constants.ContextKeyUserRole, string(claims.Role))

		c.Next()
	}
}

// OptionalAuth resolves identity when a valid token is present but lets
// anonymous requests through.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.Validate(token)
		if err == nil {
			c.Set(constants.ContextKeyUserID, claims.UserID)
			c.Set(constants.ContextKeyUserEmail, claims.Email)
			c.Set(constants.ContextKeyUserRole, string(claims.Role))
		}

		c.Next()
	}
}

func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	if token := utils.GetTokenFromCookie(c, utils.AuthTokenCookie); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
