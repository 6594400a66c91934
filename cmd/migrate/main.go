// Command migrate aplica las migraciones pendientes de MIGRATIONS_DIR y termina.
package main

import (
	"context"
	"os"
	"time"

	"github.com/jhoicas/prepperstore-api/internal/infrastructure/postgres"
	"github.com/jhoicas/prepperstore-api/pkg/config"
	"github.com/jhoicas/prepperstore-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	cfg.Store.Driver = config.DriverPostgres
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.NewMigrator(pool, os.DirFS(cfg.Store.MigrationsDir), log.Zerolog()).Run(ctx)
	if err != nil {
		log.Error().Err(err).Strs("applied", applied).Msg("migración fallida")
		pool.Close()
		os.Exit(1)
	}
	log.Info().Strs("applied", applied).Str("dir", cfg.Store.MigrationsDir).Msg("migraciones aplicadas")
}
