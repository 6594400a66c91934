package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/prepperstore-api/internal/application/dto"
	"github.com/jhoicas/prepperstore-api/internal/application/inventory"
)

var scanFieldMessages = map[string]string{
	"barcode":             "Barcode is required",
	"mode":                "mode must be one of IN, OUT, STATUS",
	"preferredLocationId": "preferredLocationId must be a number",
}

// ScanHandler expone el motor de escaneo.
type ScanHandler struct {
	uc *inventory.ScanUseCase
}

// NewScanHandler construye el handler.
func NewScanHandler(uc *inventory.ScanUseCase) *ScanHandler {
	return &ScanHandler{uc: uc}
}

// Scan godoc
// @Summary      Procesar un escaneo (IN / OUT / STATUS)
// @Description  Las advertencias (sin stock, sin ubicación) se devuelven con 200 en el campo warning.
// @Tags         scan
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "barcode, mode, preferredLocationId"
// @Success      200   {object}  dto.KnownScanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/scan [post]
func (h *ScanHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := decodeJSON(c, &in, scanFieldMessages); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ScanFromRequest(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
