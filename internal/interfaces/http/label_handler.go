package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/prepperstore-api/internal/application/dto"
	"github.com/jhoicas/prepperstore-api/internal/application/labels"
)

// LabelHandler etiquetas PDF con códigos de barras.
type LabelHandler struct {
	uc *labels.LabelUseCase
}

// NewLabelHandler construye el handler.
func NewLabelHandler(uc *labels.LabelUseCase) *LabelHandler {
	return &LabelHandler{uc: uc}
}

// ItemLabel godoc
// @Summary      Etiqueta PDF del item (Code128 por identificador)
// @Tags         items
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del item"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/label [get]
func (h *LabelHandler) ItemLabel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id must be a positive integer"})
	}
	pdf, err := h.uc.ItemLabel(c.UserContext(), int64(id))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="item-%d-label.pdf"`, id))
	return c.Send(pdf)
}
