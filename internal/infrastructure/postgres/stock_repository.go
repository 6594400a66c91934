package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/prepperstore-api/internal/domain/entity"
	"github.com/jhoicas/prepperstore-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// snapshotSQL es la única consulta de lectura del motor de escaneo (antes y después de mutar).
const snapshotSQL = `
	SELECT
		ii.id         AS identifier_id,
		ii.identifier AS identifier,
		i.id          AS item_id,
		i.name        AS item_name,
		i.threshold   AS item_threshold,
		s.location_id AS location_id,
		l.name        AS location_name,
		s.amount      AS location_amount
	FROM item_identifier ii
	JOIN item i ON i.id = ii.item_id
	LEFT JOIN item_stock s ON s.item_id = i.id
	LEFT JOIN location l ON l.id = s.location_id
	WHERE ii.identifier = $1
	ORDER BY s.id`

func scanSnapshotRow(row pgx.Row) (entity.SnapshotRow, error) {
	var r entity.SnapshotRow
	err := row.Scan(
		&r.IdentifierID, &r.Identifier, &r.ItemID, &r.ItemName, &r.ItemThreshold,
		&r.LocationID, &r.LocationName, &r.Amount,
	)
	return r, err
}

func scanAmount(row pgx.Row) (int64, error) {
	var n int64
	err := row.Scan(&n)
	return n, err
}

// Snapshot carga identificador + item + stock + ubicación para el código.
func (r *StockRepo) Snapshot(ctx context.Context, identifier string) ([]entity.SnapshotRow, error) {
	rows, err := QueryAll(ctx, r.q, scanSnapshotRow, snapshotSQL, identifier)
	if err != nil {
		return nil, fmt.Errorf("load stock snapshot: %w", err)
	}
	return rows, nil
}

// Increment suma 1 a la fila existente y devuelve la cantidad nueva.
func (r *StockRepo) Increment(ctx context.Context, itemID, locationID int64) (int64, bool, error) {
	n, err := QueryOne(ctx, r.q, scanAmount, `
		UPDATE item_stock
		SET amount = amount + 1
		WHERE item_id = $1 AND location_id = $2
		RETURNING amount`, itemID, locationID)
	if err != nil {
		return 0, false, fmt.Errorf("increment stock: %w", err)
	}
	if n == nil {
		return 0, false, nil
	}
	return *n, true, nil
}

// InsertOne crea la fila con amount=1. Si una petición concurrente la creó primero,
// ON CONFLICT suma 1 sobre ella en lugar de violar UNIQUE(item_id, location_id).
func (r *StockRepo) InsertOne(ctx context.Context, itemID, locationID int64) (int64, error) {
	n, err := QueryOne(ctx, r.q, scanAmount, `
		INSERT INTO item_stock (item_id, location_id, amount)
		VALUES ($1, $2, 1)
		ON CONFLICT (item_id, location_id)
		DO UPDATE SET amount = item_stock.amount + 1
		RETURNING amount`, itemID, locationID)
	if err != nil {
		return 0, fmt.Errorf("insert stock: %w", err)
	}
	return *n, nil
}

// DecrementIfPositive resta 1 solo si amount > 0; la condición en el WHERE es lo
// que impide que salidas concurrentes dejen la cantidad en negativo.
func (r *StockRepo) DecrementIfPositive(ctx context.Context, itemID, locationID int64) (int64, bool, error) {
	n, err := QueryOne(ctx, r.q, scanAmount, `
		UPDATE item_stock
		SET amount = amount - 1
		WHERE item_id = $1 AND location_id = $2 AND amount > 0
		RETURNING amount`, itemID, locationID)
	if err != nil {
		return 0, false, fmt.Errorf("decrement stock: %w", err)
	}
	if n == nil {
		return 0, false, nil
	}
	return *n, true, nil
}

// Adjust aplica delta acotando en cero, en una sola sentencia por caso.
func (r *StockRepo) Adjust(ctx context.Context, itemID, locationID, delta int64) error {
	var err error
	if delta > 0 {
		_, err = r.q.Exec(ctx, `
			INSERT INTO item_stock (item_id, location_id, amount)
			VALUES ($1, $2, $3)
			ON CONFLICT (item_id, location_id)
			DO UPDATE SET amount = item_stock.amount + EXCLUDED.amount`, itemID, locationID, delta)
	} else {
		_, err = r.q.Exec(ctx, `
			UPDATE item_stock
			SET amount = GREATEST(amount + $3, 0)
			WHERE item_id = $1 AND location_id = $2`, itemID, locationID, delta)
	}
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	return nil
}

// LevelsByItem lista el stock del item por ubicación.
func (r *StockRepo) LevelsByItem(ctx context.Context, itemID int64) ([]entity.StockLevel, error) {
	levels, err := QueryAll(ctx, r.q, func(row pgx.Row) (entity.StockLevel, error) {
		var (
			l    entity.StockLevel
			name *string
		)
		if err := row.Scan(&l.LocationID, &name, &l.Amount); err != nil {
			return l, err
		}
		l.LocationName = entity.UnknownLocationName
		if name != nil {
			l.LocationName = *name
		}
		return l, nil
	}, `
		SELECT s.location_id, l.name, s.amount
		FROM item_stock s
		JOIN location l ON l.id = s.location_id
		WHERE s.item_id = $1
		ORDER BY s.location_id`, itemID)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	return levels, nil
}
