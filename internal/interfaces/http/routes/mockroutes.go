package routes

import (
	"github.com/gin-gonic/gin"

	"openfare/internal/interfaces/http/handlers"
)

// MockRouteConfig holds dependencies for the mock partner routes.
type MockRouteConfig struct {
	MockPartnerHandler *handlers.MockPartnerHandler
}

// SetupMockRoutes configures the fake partner API used in demos.
func SetupMockRoutes(engine *gin.Engine, cfg *MockRouteConfig) {
	mock := engine.Group("/mock/redbus")
	{
		mock.GET("/tickets/:pnr", cfg.MockPartnerHandler.GetTicket)
	}
}
