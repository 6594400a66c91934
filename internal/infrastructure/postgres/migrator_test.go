package postgres

import (
	"context"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingMigrations_OrdenLexicoYFiltrado(t *testing.T) {
	fsys := fstest.MapFS{
		"010_extra.sql":     {Data: []byte("SELECT 1")},
		"002_seed.sql":      {Data: []byte("SELECT 1")},
		"001_init.sql":      {Data: []byte("SELECT 1")},
		"README.md":         {Data: []byte("docs")},
		"sub/003_other.sql": {Data: []byte("SELECT 1")},
	}

	names, err := pendingMigrations(fsys, map[string]bool{"002_seed.sql": true})
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init.sql", "010_extra.sql"}, names)
}

func TestPendingMigrations_TodoAplicado(t *testing.T) {
	fsys := fstest.MapFS{"001_init.sql": {Data: []byte("SELECT 1")}}

	names, err := pendingMigrations(fsys, map[string]bool{"001_init.sql": true})
	require.NoError(t, err)
	assert.Empty(t, names)
}

// testPool abre TEST_DATABASE_URL o salta el test.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Skipf("postgres no disponible: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("postgres no disponible: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestMigrator_Run_Idempotente(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	_, err := pool.Exec(ctx, `DROP TABLE IF EXISTS migrator_probe`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, ledgerDDL)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `DELETE FROM schema_migrations WHERE name LIKE 'zz_probe_%'`)
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"zz_probe_1.sql": {Data: []byte(`CREATE TABLE migrator_probe (id int)`)},
		"zz_probe_2.sql": {Data: []byte(`INSERT INTO migrator_probe VALUES (1); INSERT INTO migrator_probe VALUES (2)`)},
	}
	m := NewMigrator(pool, fsys, zerolog.Nop())

	done, err := m.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"zz_probe_1.sql", "zz_probe_2.sql"}, done)

	done, err = m.Run(ctx)
	require.NoError(t, err)
	assert.Empty(t, done)

	var n int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM migrator_probe`).Scan(&n))
	assert.Equal(t, 2, n)

	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DROP TABLE IF EXISTS migrator_probe`)
		_, _ = pool.Exec(context.Background(), `DELETE FROM schema_migrations WHERE name LIKE 'zz_probe_%'`)
	})
}

func TestMigrator_Run_FalloNoRegistra(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	fsys := fstest.MapFS{"zz_probe_bad.sql": {Data: []byte(`SELECT * FROM tabla_que_no_existe`)}}
	_, err := NewMigrator(pool, fsys, zerolog.Nop()).Run(ctx)
	require.Error(t, err)

	var n int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM schema_migrations WHERE name = 'zz_probe_bad.sql'`).Scan(&n))
	assert.Zero(t, n)
}
