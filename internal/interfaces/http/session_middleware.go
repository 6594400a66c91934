package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/prepperstore-api/internal/application/auth"
	"github.com/jhoicas/prepperstore-api/internal/application/dto"
	"github.com/jhoicas/prepperstore-api/pkg/session"
)

// Rutas de /api accesibles sin sesión.
var authExemptRoutes = map[string]bool{
	"/api/login":      true,
	"/api/logout":     true,
	"/api/auth-check": true,
	"/api/health":     true,
	"/api/db-health":  true,
}

// SessionMiddleware exige la cookie de sesión firmada salvo en las rutas exentas.
func SessionMiddleware(uc *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if len(path) > 1 {
			path = strings.TrimSuffix(path, "/")
		}
		if authExemptRoutes[path] {
			return c.Next()
		}
		if !uc.Authenticated(c.Cookies(session.CookieName)) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "unauthorized"})
		}
		return c.Next()
	}
}
