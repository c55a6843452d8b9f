package routes

import (
	"github.com/gin-gonic/gin"

	"openfare/internal/interfaces/http/handlers"
	"openfare/internal/interfaces/http/middleware"
	"openfare/internal/shared/authorization"
)

// UserRouteConfig holds dependencies for passenger routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures passenger-facing routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	user := engine.Group("/api/user")
	user.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireUser())
	{
		user.GET("/dashboard", cfg.UserHandler.Dashboard)
		user.POST("/complaint", cfg.UserHandler.FileComplaint)
	}
}
