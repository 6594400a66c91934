package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const ledgerDDL = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		id         serial PRIMARY KEY,
		name       text NOT NULL UNIQUE,
		applied_at timestamptz NOT NULL DEFAULT now()
	)`

// Migrator aplica en orden los scripts *.sql de un fs.FS que aún no constan en schema_migrations.
type Migrator struct {
	db   Beginner
	q    Querier
	fsys fs.FS
	log  zerolog.Logger
}

// DB lo cumple *pgxpool.Pool.
type DB interface {
	Beginner
	Querier
}

// NewMigrator construye el migrador. fsys suele ser os.DirFS(MIGRATIONS_DIR).
func NewMigrator(db DB, fsys fs.FS, log zerolog.Logger) *Migrator {
	return &Migrator{db: db, q: db, fsys: fsys, log: log}
}

// Run crea el ledger si falta, aplica los scripts pendientes y devuelve sus nombres.
// Cada script y su fila en el ledger van en la misma transacción: un script que
// falla no queda registrado y los siguientes no se ejecutan.
func (m *Migrator) Run(ctx context.Context) ([]string, error) {
	if _, err := m.q.Exec(ctx, ledgerDDL); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}
	names, err := QueryAll(ctx, m.q, func(row pgx.Row) (string, error) {
		var n string
		err := row.Scan(&n)
		return n, err
	}, `SELECT name FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	applied := make(map[string]bool, len(names))
	for _, n := range names {
		applied[n] = true
	}

	pending, err := pendingMigrations(m.fsys, applied)
	if err != nil {
		return nil, err
	}

	var done []string
	for _, name := range pending {
		body, err := fs.ReadFile(m.fsys, name)
		if err != nil {
			return done, fmt.Errorf("read migration %s: %w", name, err)
		}
		m.log.Info().Str("migration", name).Msg("aplicando migración")
		err = WithTx(ctx, m.db, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(body)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, name)
			return err
		})
		if err != nil {
			return done, fmt.Errorf("apply migration %s: %w", name, err)
		}
		done = append(done, name)
	}
	m.log.Info().Int("applied", len(done)).Int("known", len(applied)).Msg("migraciones al día")
	return done, nil
}

// pendingMigrations lista los *.sql del directorio raíz de fsys, en orden lexicográfico,
// que no estén en applied.
func pendingMigrations(fsys fs.FS, applied map[string]bool) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(path.Ext(e.Name()), ".sql") {
			continue
		}
		if !applied[e.Name()] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
