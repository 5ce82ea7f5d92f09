package http

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/moonhub/inventory-hub/internal/application/dto"
	"github.com/moonhub/inventory-hub/internal/application/export"
)

// ExportHandler handles the spreadsheet export endpoint.
type ExportHandler struct {
	uc *export.ExportUseCase
}

// NewExportHandler builds the handler.
func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// ExportInventory godoc
// @Summary      Download the inventory as an xlsx workbook
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/export/inventory [get]
func (h *ExportHandler) ExportInventory(c *fiber.Ctx) error {
	path, err := h.uc.ExportInventory(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return c.Download(path, filepath.Base(path))
}
