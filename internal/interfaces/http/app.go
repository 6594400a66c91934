package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

// DefaultCORSOrigin origen del cliente web en desarrollo.
const DefaultCORSOrigin = "http://localhost:5173"

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name        string
	CORSOrigins []string
}

// NewApp crea la app Fiber con el middleware común: recover, cabeceras de seguridad,
// CORS con credenciales y log por petición.
func NewApp(cfg AppConfig, log zerolog.Logger) *fiber.App {
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		// Fiber rechaza "*" junto con credenciales.
		origins = []string{DefaultCORSOrigin}
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	// Sin CSP: /docs sirve Swagger UI con scripts en línea.
	app.Use(helmet.New(helmet.Config{CrossOriginEmbedderPolicy: "unsafe-none"}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, " + headerRequestID,
		ExposeHeaders:    headerRequestID,
	}))
	app.Use(RequestLogger(log))
	return app
}
