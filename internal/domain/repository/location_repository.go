package repository

import (
	"context"

	"github.com/jhoicas/prepperstore-api/internal/domain/entity"
)

// LocationRepository puerto de solo lectura para ubicaciones (datos de referencia).
type LocationRepository interface {
	// GetByID devuelve nil, nil si la ubicación no existe.
	GetByID(ctx context.Context, id int64) (*entity.Location, error)
	List(ctx context.Context) ([]*entity.Location, error)
}
