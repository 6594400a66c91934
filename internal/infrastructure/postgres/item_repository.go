package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/prepperstore-api/internal/domain/entity"
	"github.com/jhoicas/prepperstore-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

func scanItem(row pgx.Row) (entity.Item, error) {
	var it entity.Item
	err := row.Scan(&it.ID, &it.Name, &it.Threshold)
	return it, err
}

// Create inserta el item y devuelve la fila creada.
func (r *ItemRepo) Create(ctx context.Context, name string, threshold *decimal.Decimal) (*entity.Item, error) {
	it, err := QueryOne(ctx, r.q, scanItem, `
		INSERT INTO item (name, threshold)
		VALUES ($1, $2)
		RETURNING id, name, threshold`, name, threshold)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return it, nil
}

// GetByID obtiene un item por ID.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	it, err := QueryOne(ctx, r.q, scanItem, `SELECT id, name, threshold FROM item WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// ListByName lista todos los items por nombre ascendente.
func (r *ItemRepo) ListByName(ctx context.Context) ([]*entity.Item, error) {
	items, err := QueryAll(ctx, r.q, scanItem, `SELECT id, name, threshold FROM item ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	list := make([]*entity.Item, 0, len(items))
	for i := range items {
		list = append(list, &items[i])
	}
	return list, nil
}
