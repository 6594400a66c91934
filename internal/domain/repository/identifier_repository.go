package repository

import (
	"context"

	"github.com/jhoicas/prepperstore-api/internal/domain/entity"
)

// IdentifierRepository define el puerto para códigos escaneables y sus tipos.
type IdentifierRepository interface {
	// TypeIDByName devuelve el id del tipo de identificador; ok=false si no está configurado.
	TypeIDByName(ctx context.Context, name string) (id int64, ok bool, err error)
	// Link vincula el código al item. Devuelve domain.ErrDuplicate si el código ya existe.
	Link(ctx context.Context, itemID int64, identifier string, typeID int64) error
	ListByItem(ctx context.Context, itemID int64) ([]*entity.Identifier, error)
}
