package routes

import (
	"github.com/gin-gonic/gin"

	"openfare/internal/interfaces/http/handlers"
)

// OperatorRouteConfig holds dependencies for the public operator routes.
type OperatorRouteConfig struct {
	OperatorHandler *handlers.OperatorHandler
}

// SetupOperatorRoutes configures the public operator transparency routes.
func SetupOperatorRoutes(engine *gin.Engine, cfg *OperatorRouteConfig) {
	operators := engine.Group("/api/operators")
	{
		operators.GET("", cfg.OperatorHandler.List)
		operators.GET("/:id/trust-history", cfg.OperatorHandler.TrustHistory)
	}
}
