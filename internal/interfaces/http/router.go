package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/prepperstore-api/internal/application/auth"
	"github.com/jhoicas/prepperstore-api/internal/application/inventory"
	"github.com/jhoicas/prepperstore-api/internal/application/labels"
	"github.com/jhoicas/prepperstore-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ScanUC        *inventory.ScanUseCase
	AdjustUC      *inventory.AdjustStockUseCase
	ItemUC        *usecase.ItemUseCase
	LocationUC    *usecase.LocationUseCase
	LabelUC       *labels.LabelUseCase
	AuthUC        *auth.AuthUseCase
	ServiceName   string
	SecureCookies bool
	DBNow         DBClock
}

// Router registra las rutas de la API. Todo /api pasa por la cookie de sesión
// salvo las rutas exentas.
func Router(app *fiber.App, deps RouterDeps) {
	health := NewHealthHandler(deps.ServiceName, deps.DBNow)
	app.Get("/", health.Root)

	api := app.Group("/api", SessionMiddleware(deps.AuthUC))

	// Públicas
	api.Get("/health", health.Health)
	api.Get("/db-health", health.DBHealth)

	authHandler := NewAuthHandler(deps.AuthUC, deps.SecureCookies)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Get("/auth-check", authHandler.AuthCheck)

	// Protegidas
	scanHandler := NewScanHandler(deps.ScanUC)
	api.Post("/scan", scanHandler.Scan)

	itemHandler := NewItemHandler(deps.ItemUC)
	api.Get("/items", itemHandler.List)
	api.Post("/items", itemHandler.Create)
	api.Post("/item-identifiers", itemHandler.LinkIdentifier)

	labelHandler := NewLabelHandler(deps.LabelUC)
	api.Get("/items/:id/label", labelHandler.ItemLabel)

	locationHandler := NewLocationHandler(deps.LocationUC)
	api.Get("/locations", locationHandler.List)

	stockHandler := NewStockHandler(deps.AdjustUC)
	api.Post("/stock/adjust", stockHandler.Adjust)
}
