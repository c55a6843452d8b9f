package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MockPartnerHandler fakes the partner booking API so the platform can be
// demoed without a real integration. Responses are canned.
type MockPartnerHandler struct{}

func NewMockPartnerHandler() *MockPartnerHandler {
	return &MockPartnerHandler{}
}

func (h *MockPartnerHandler) GetTicket(c *gin.Context) {
	pnr := c.Param("pnr")

	c.JSON(http.StatusOK, gin.H{
		"pnr":      pnr,
		"status":   "MOCK_DATA",
		"operator": "VRL Travels",
		"fare":     1200.0,
		"cancellation_policy": gin.H{
			"0-24h":  "100% Refund",
			"24-48h": "75% Refund",
			">48h":   "50% Refund",
		},
	})
}
