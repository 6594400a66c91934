package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/jhoicas/prepperstore-api/internal/application/auth"
	"github.com/jhoicas/prepperstore-api/internal/application/inventory"
	"github.com/jhoicas/prepperstore-api/internal/application/labels"
	"github.com/jhoicas/prepperstore-api/internal/application/usecase"
	"github.com/jhoicas/prepperstore-api/internal/domain/repository"
	"github.com/jhoicas/prepperstore-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/prepperstore-api/internal/infrastructure/pdf"
	"github.com/jhoicas/prepperstore-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/prepperstore-api/internal/interfaces/http"
	"github.com/jhoicas/prepperstore-api/pkg/config"
	"github.com/jhoicas/prepperstore-api/pkg/logger"
)

// repos agrupa los puertos de almacén según STORE_DRIVER.
type repos struct {
	items     repository.ItemRepository
	idents    repository.IdentifierRepository
	locations repository.LocationRepository
	stock     repository.StockRepository
	dbNow     httpRouter.DBClock
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	r, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacén")
	}
	defer r.close()

	authUC, err := auth.NewAuthUseCase(auth.Config{
		Password:     cfg.Session.Password,
		CookieSecret: cfg.Session.CookieSecret,
		MaxAge:       time.Duration(cfg.Session.MaxAgeDays) * 24 * time.Hour,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configurar contraseña")
	}
	if cfg.Session.Password == "" {
		log.Warn().Msg("PREPPERSTORE_PASSWORD vacío: ningún login será aceptado")
	}

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	}, log.Zerolog())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Prepperstore API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ScanUC:        inventory.NewScanUseCase(r.stock, r.locations),
		AdjustUC:      inventory.NewAdjustStockUseCase(r.items, r.locations, r.stock),
		ItemUC:        usecase.NewItemUseCase(r.items, r.idents),
		LocationUC:    usecase.NewLocationUseCase(r.locations),
		LabelUC:       labels.NewLabelUseCase(r.items, r.idents, infrapdf.NewMarotoLabelGenerator()),
		AuthUC:        authUC,
		ServiceName:   cfg.App.Name,
		SecureCookies: cfg.Session.Secure,
		DBNow:         r.dbNow,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStore abre PostgreSQL (aplicando migraciones si MIGRATE_ON_START) o el almacén en memoria.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repos, error) {
	if cfg.Store.Driver == config.DriverMemory {
		store := memory.New()
		store.AddLocation(1, "Pantry")
		store.AddLocation(2, "Basement")
		store.AddLocation(3, "Garage")
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		return &repos{
			items: store, idents: store, locations: store.Locations(), stock: store,
			close: func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.Store.MigrateOnStart {
		m := postgres.NewMigrator(pool, os.DirFS(cfg.Store.MigrationsDir), log.Zerolog())
		if _, err := m.Run(ctx); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &repos{
		items:     postgres.NewItemRepository(pool),
		idents:    postgres.NewIdentifierRepository(pool),
		locations: postgres.NewLocationRepository(pool),
		stock:     postgres.NewStockRepository(pool),
		dbNow: func(ctx context.Context) (time.Time, error) {
			return postgres.Now(ctx, pool)
		},
		close: pool.Close,
	}, nil
}
