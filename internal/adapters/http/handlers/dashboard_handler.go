package handlers

import (
	"boardeasy/internal/core/services"
	"boardeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns aggregated ledger totals and occupancy statistics
// @Summary Dashboard
// @Tags Dashboard
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetDashboard(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Dashboard retrieved successfully", data)
}
