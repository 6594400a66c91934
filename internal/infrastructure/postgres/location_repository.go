package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/prepperstore-api/internal/domain/entity"
	"github.com/jhoicas/prepperstore-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación de LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

func scanLocation(row pgx.Row) (*entity.Location, error) {
	var (
		loc  entity.Location
		name *string
	)
	if err := row.Scan(&loc.ID, &name); err != nil {
		return nil, err
	}
	if name != nil {
		loc.Name = *name
	}
	return &loc, nil
}

// GetByID obtiene una ubicación por ID.
func (r *LocationRepo) GetByID(ctx context.Context, id int64) (*entity.Location, error) {
	loc, err := QueryOne(ctx, r.q, scanLocation, `SELECT id, name FROM location WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	if loc == nil {
		return nil, nil
	}
	return *loc, nil
}

// List lista todas las ubicaciones por id.
func (r *LocationRepo) List(ctx context.Context) ([]*entity.Location, error) {
	list, err := QueryAll(ctx, r.q, scanLocation, `SELECT id, name FROM location ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return list, nil
}
