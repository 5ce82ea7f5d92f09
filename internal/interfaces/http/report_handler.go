package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/moonhub/inventory-hub/internal/application/dto"
	"github.com/moonhub/inventory-hub/internal/application/report"
)

// ReportHandler handles the read-only report endpoints.
type ReportHandler struct {
	uc *report.AggregatorUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *report.AggregatorUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LowStockAlerts godoc
// @Summary      Products at or below their minimum stock level
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.LowStockAlertDTO
// @Router       /api/low-stock-alerts [get]
func (h *ReportHandler) LowStockAlerts(c *fiber.Ctx) error {
	out, err := h.uc.LowStockAlerts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// InventoryReport godoc
// @Summary      Inventory report with marketplace listings joined in
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.InventoryReportRowDTO
// @Router       /api/report [get]
func (h *ReportHandler) InventoryReport(c *fiber.Ctx) error {
	out, err := h.uc.InventoryReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Valuation godoc
// @Summary      Stock valuation per product
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.ValuationRowDTO
// @Router       /api/reports/valuation [get]
func (h *ReportHandler) Valuation(c *fiber.Ctx) error {
	out, err := h.uc.Valuation(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
