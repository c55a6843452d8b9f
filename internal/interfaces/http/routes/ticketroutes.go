package routes

import (
	"github.com/gin-gonic/gin"

	"openfare/internal/interfaces/http/handlers"
	"openfare/internal/interfaces/http/middleware"
	"openfare/internal/shared/authorization"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket lookup and cancellation routes.
// Lookup is public; cancellation requires a signed-in passenger.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/api/tickets")
	{
		tickets.GET("/:pnr", cfg.TicketHandler.Lookup)
		tickets.POST("/:pnr/cancel",
			cfg.AuthMiddleware.RequireAuth(),
			authorization.RequireUser(),
			cfg.TicketHandler.Cancel)
	}
}
