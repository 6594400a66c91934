package repository

import (
	"context"

	"github.com/jhoicas/prepperstore-api/internal/domain/entity"
)

// StockRepository define el puerto para leer y mutar stock por item+ubicación.
// Cada método de escritura es una única sentencia; la atomicidad por fila del almacén
// es la única coordinación entre peticiones concurrentes.
type StockRepository interface {
	// Snapshot carga el join identificador → item → stock → ubicación para un código.
	// Slice vacío = código desconocido.
	Snapshot(ctx context.Context, identifier string) ([]entity.SnapshotRow, error)

	// Increment suma 1 a una fila existente. ok=false si la fila no existe.
	Increment(ctx context.Context, itemID, locationID int64) (newAmount int64, ok bool, err error)
	// InsertOne crea la fila con amount=1 (o suma 1 si otra petición la creó antes).
	InsertOne(ctx context.Context, itemID, locationID int64) (newAmount int64, err error)
	// DecrementIfPositive resta 1 solo si amount > 0. ok=false si no se afectó ninguna fila.
	DecrementIfPositive(ctx context.Context, itemID, locationID int64) (newAmount int64, ok bool, err error)

	// Adjust aplica delta acotando en cero. Sin fila previa solo inserta si delta > 0.
	Adjust(ctx context.Context, itemID, locationID, delta int64) error
	// LevelsByItem lista el stock de un item por ubicación, ordenado por location_id.
	LevelsByItem(ctx context.Context, itemID int64) ([]entity.StockLevel, error)
}
