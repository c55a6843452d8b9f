package routes

import (
	"github.com/gin-gonic/gin"

	"openfare/internal/interfaces/http/handlers"
	"openfare/internal/interfaces/http/middleware"
	"openfare/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	AdminHandler   *handlers.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAdminRoutes configures the regulator routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/api/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		admin.GET("/complaints", cfg.AdminHandler.ListComplaints)
		admin.GET("/complaints/:id", cfg.AdminHandler.GetComplaint)
		admin.PATCH("/complaints/:id/status", cfg.AdminHandler.UpdateComplaintStatus)
		admin.POST("/complaints/:id/messages", cfg.AdminHandler.AddMessage)

		admin.POST("/refunds/:id/complete", cfg.AdminHandler.CompleteRefund)

		admin.POST("/sla/sweep", cfg.AdminHandler.RunSweep)
		admin.GET("/sla/config", cfg.AdminHandler.ListSLAConfigs)

		admin.GET("/audit", cfg.AdminHandler.ListAuditLogs)
	}
}
