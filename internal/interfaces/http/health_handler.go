package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DBClock devuelve la hora del almacén; sirve de comprobación de conectividad.
type DBClock func(ctx context.Context) (time.Time, error)

// HealthHandler endpoints de salud (exentos de sesión).
type HealthHandler struct {
	service string
	started time.Time
	dbNow   DBClock
}

// NewHealthHandler construye el handler. dbNow nil = almacén sin base de datos.
func NewHealthHandler(service string, dbNow DBClock) *HealthHandler {
	if dbNow == nil {
		dbNow = func(context.Context) (time.Time, error) { return time.Now(), nil }
	}
	return &HealthHandler{service: service, started: time.Now(), dbNow: dbNow}
}

// Root godoc
// @Summary  Identificación del servicio
// @Tags     health
// @Produce  json
// @Router   / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}

// Health godoc
// @Summary  Estado del proceso
// @Tags     health
// @Produce  json
// @Router   /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "uptime": time.Since(h.started).Seconds()})
}

// DBHealth godoc
// @Summary  Conectividad con la base de datos
// @Tags     health
// @Produce  json
// @Router   /api/db-health [get]
func (h *HealthHandler) DBHealth(c *fiber.Ctx) error {
	now, err := h.dbNow(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "ok", "now": now})
}
