package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/prepperstore-api/internal/application/dto"
	"github.com/jhoicas/prepperstore-api/internal/application/inventory"
)

const adjustFieldMessage = "itemId, locationId, and delta must be numbers"

var adjustFieldMessages = map[string]string{
	"itemId":     adjustFieldMessage,
	"locationId": adjustFieldMessage,
	"delta":      adjustFieldMessage,
}

// StockHandler ajuste administrativo de stock.
type StockHandler struct {
	uc *inventory.AdjustStockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.AdjustStockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Adjust godoc
// @Summary      Ajustar stock de un item en una ubicación (resultado acotado en 0)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "itemId, locationId, delta"
// @Success      200   {object}  dto.ItemStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/adjust [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := decodeJSON(c, &in, adjustFieldMessages); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.AdjustFromRequest(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
