package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/moonhub/inventory-hub/internal/application/dto"
	"github.com/moonhub/inventory-hub/internal/application/platform"
	"github.com/moonhub/inventory-hub/internal/domain"
)

// PlatformHandler handles marketplace connection and listing endpoints.
type PlatformHandler struct {
	uc *platform.PlatformUseCase
}

// NewPlatformHandler builds the handler.
func NewPlatformHandler(uc *platform.PlatformUseCase) *PlatformHandler {
	return &PlatformHandler{uc: uc}
}

// Status godoc
// @Summary      Connection status of every marketplace
// @Tags         platforms
// @Produce      json
// @Success      200  {array}  dto.PlatformStatusDTO
// @Router       /api/platforms/status [get]
func (h *PlatformHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.uc.Status())
}

// Connect godoc
// @Summary      Store marketplace credentials and mark it connected
// @Tags         platforms
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        name  path  string  true  "Platform name"
// @Param        body  body  dto.ConnectPlatformRequest  true  "Credentials"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/platforms/{name}/connect [post]
func (h *PlatformHandler) Connect(c *fiber.Ctx) error {
	var in dto.ConnectPlatformRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := h.uc.Connect(c.Params("name"), in); err != nil {
		if err == domain.ErrPlatformUnknown {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_PLATFORM", Message: "unknown platform"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "credentials are required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "platform connected"})
}

// Sync godoc
// @Summary      Trigger a marketplace sync
// @Tags         platforms
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "Platform name"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/platforms/{name}/sync [post]
func (h *PlatformHandler) Sync(c *fiber.Ctx) error {
	if err := h.uc.Sync(c.Params("name")); err != nil {
		if err == domain.ErrPlatformUnknown {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_PLATFORM", Message: "unknown platform"})
		}
		if err == domain.ErrPlatformOffline {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_CONNECTED", Message: "platform is not connected"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "sync triggered"})
}

// AddListing godoc
// @Summary      Attach a marketplace listing to a product
// @Tags         platforms
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sku   path  string  true  "SKU"
// @Param        body  body  dto.CreateListingRequest  true  "Listing data"
// @Success      201   {object}  dto.ListingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{sku}/listings [post]
func (h *PlatformHandler) AddListing(c *fiber.Ctx) error {
	var in dto.CreateListingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.AddListing(c.Context(), c.Params("sku"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "platform is required"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListListings godoc
// @Summary      List the marketplace listings of a product
// @Tags         platforms
// @Produce      json
// @Param        sku  path  string  true  "SKU"
// @Success      200  {array}   dto.ListingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{sku}/listings [get]
func (h *PlatformHandler) ListListings(c *fiber.Ctx) error {
	out, err := h.uc.ListListings(c.Context(), c.Params("sku"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
