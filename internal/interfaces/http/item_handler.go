package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/prepperstore-api/internal/application/dto"
	"github.com/jhoicas/prepperstore-api/internal/application/usecase"
)

var (
	createItemFieldMessages = map[string]string{
		"name": "name must be a non-empty string",
	}
	linkIdentifierFieldMessages = map[string]string{
		"itemId":     "itemId must be a number",
		"identifier": "identifier must be a non-empty string",
	}
)

// ItemHandler maneja items e identificadores.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar items (orden alfabético)
// @Tags         items
// @Produce      json
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "name, threshold"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := decodeJSON(c, &in, createItemFieldMessages); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// LinkIdentifier godoc
// @Summary      Vincular identificador (código de barras) a un item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LinkIdentifierRequest  true  "itemId, identifier"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/item-identifiers [post]
func (h *ItemHandler) LinkIdentifier(c *fiber.Ctx) error {
	var in dto.LinkIdentifierRequest
	if err := decodeJSON(c, &in, linkIdentifierFieldMessages); err != nil {
		return writeError(c, err)
	}
	if err := h.uc.LinkIdentifier(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
