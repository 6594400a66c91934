package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/prepperstore-api/internal/domain"
	"github.com/jhoicas/prepperstore-api/internal/domain/entity"
	"github.com/jhoicas/prepperstore-api/internal/domain/repository"
)

var _ repository.IdentifierRepository = (*IdentifierRepo)(nil)

// IdentifierRepo implementación de IdentifierRepository sobre PostgreSQL.
type IdentifierRepo struct {
	q Querier
}

// NewIdentifierRepository construye el adaptador de identificadores.
func NewIdentifierRepository(q Querier) *IdentifierRepo {
	return &IdentifierRepo{q: q}
}

// TypeIDByName busca el tipo de identificador por nombre en cada llamada.
func (r *IdentifierRepo) TypeIDByName(ctx context.Context, name string) (int64, bool, error) {
	id, err := QueryOne(ctx, r.q, func(row pgx.Row) (int64, error) {
		var id int64
		err := row.Scan(&id)
		return id, err
	}, `SELECT id FROM item_identifier_type WHERE name = $1 LIMIT 1`, name)
	if err != nil {
		return 0, false, fmt.Errorf("get identifier type: %w", err)
	}
	if id == nil {
		return 0, false, nil
	}
	return *id, true, nil
}

// Link inserta el vínculo código → item.
func (r *IdentifierRepo) Link(ctx context.Context, itemID int64, identifier string, typeID int64) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO item_identifier (item_id, identifier, item_identifier_type)
		VALUES ($1, $2, $3)`, itemID, identifier, typeID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item identifier: %w", err)
	}
	return nil
}

// ListByItem lista los códigos de un item en orden de alta.
func (r *IdentifierRepo) ListByItem(ctx context.Context, itemID int64) ([]*entity.Identifier, error) {
	list, err := QueryAll(ctx, r.q, func(row pgx.Row) (*entity.Identifier, error) {
		var ident entity.Identifier
		err := row.Scan(&ident.ID, &ident.ItemID, &ident.Identifier, &ident.TypeID)
		return &ident, err
	}, `
		SELECT id, item_id, identifier, item_identifier_type
		FROM item_identifier WHERE item_id = $1 ORDER BY id`, itemID)
	if err != nil {
		return nil, fmt.Errorf("list item identifiers: %w", err)
	}
	return list, nil
}
