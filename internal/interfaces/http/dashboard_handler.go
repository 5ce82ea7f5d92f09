package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/moonhub/inventory-hub/internal/application/dto"
	"github.com/moonhub/inventory-hub/internal/application/report"
)

// DashboardHandler handles the dashboard summary endpoints.
type DashboardHandler struct {
	uc *report.AggregatorUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *report.AggregatorUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Dashboard summary statistics
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.DashboardStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// StockChart godoc
// @Summary      Stock levels chart data
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.StockChartDTO
// @Router       /api/stock-chart [get]
func (h *DashboardHandler) StockChart(c *fiber.Ctx) error {
	out, err := h.uc.StockChart(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
