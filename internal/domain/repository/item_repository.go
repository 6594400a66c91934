package repository

import (
	"context"

	"github.com/jhoicas/prepperstore-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(ctx context.Context, name string, threshold *decimal.Decimal) (*entity.Item, error)
	// GetByID devuelve nil, nil si el item no existe.
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	// ListByName lista todos los items ordenados alfabéticamente por nombre.
	ListByName(ctx context.Context) ([]*entity.Item, error)
}
