package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/prepperstore-api/internal/application/dto"
	"github.com/jhoicas/prepperstore-api/internal/domain"
	"github.com/jhoicas/prepperstore-api/pkg/logger"
	"github.com/rs/zerolog"
)

const internalErrorMessage = "internal server error"

// writeError traduce errores de dominio a status + {error}. Lo que no reconoce se
// devuelve tal cual para que lo registre ErrorHandler.
func writeError(c *fiber.Ctx, err error) error {
	var (
		verr  *domain.ValidationError
		nferr *domain.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: verr.Message})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Identifier already linked"})
	case errors.As(err, &nferr):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: nferr.Message})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, domain.ErrIdentifierTypeMissing):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return err
}

// ErrorHandler responde {error} para errores de Fiber (404/405...) y 500 genérico para el resto.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return c.Status(ferr.Code).JSON(dto.ErrorResponse{Error: ferr.Message})
		}
		reqLog := logger.FromContext(c.UserContext(), logger.ForRequest(log, requestID(c), c.Method(), c.Path()))
		reqLog.Error().Err(err).Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: internalErrorMessage})
	}
}

// decodeJSON decodifica el body en out. Un campo con tipo incorrecto produce el
// mensaje de validación asociado a ese campo en fieldMessages. Body vacío = {}.
func decodeJSON(c *fiber.Ctx, out any, fieldMessages map[string]string) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	err := json.Unmarshal(body, out)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if msg, ok := fieldMessages[typeErr.Field]; ok {
			return domain.Invalid(msg)
		}
	}
	return domain.Invalid("invalid JSON body")
}
