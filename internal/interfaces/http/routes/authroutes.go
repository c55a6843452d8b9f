package routes

import (
	"github.com/gin-gonic/gin"

	"openfare/internal/interfaces/http/handlers"
	"openfare/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimiter *middleware.RateLimiter // may be nil when rate limiting is disabled
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		if cfg.RateLimiter != nil {
			auth.POST("/signup", cfg.RateLimiter.Limit(), cfg.AuthHandler.SignUp)
			auth.POST("/signin", cfg.RateLimiter.Limit(), cfg.AuthHandler.SignIn)
		} else {
			auth.POST("/signup", cfg.AuthHandler.SignUp)
			auth.POST("/signin", cfg.AuthHandler.SignIn)
		}
		auth.GET("/verify", cfg.AuthHandler.Verify)
		auth.POST("/logout", cfg.AuthHandler.Logout)
	}
}
