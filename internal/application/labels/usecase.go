package labels

import (
	"context"

	"github.com/jhoicas/prepperstore-api/internal/domain"
	"github.com/jhoicas/prepperstore-api/internal/domain/entity"
	"github.com/jhoicas/prepperstore-api/internal/domain/repository"
)

// LabelGenerator puerto para renderizar la etiqueta imprimible de un item.
type LabelGenerator interface {
	GenerateItemLabel(ctx context.Context, item *entity.Item, identifiers []*entity.Identifier) ([]byte, error)
}

// LabelUseCase genera etiquetas con un código de barras por identificador del item.
type LabelUseCase struct {
	itemRepo  repository.ItemRepository
	identRepo repository.IdentifierRepository
	gen       LabelGenerator
}

// NewLabelUseCase construye el caso de uso.
func NewLabelUseCase(itemRepo repository.ItemRepository, identRepo repository.IdentifierRepository, gen LabelGenerator) *LabelUseCase {
	return &LabelUseCase{itemRepo: itemRepo, identRepo: identRepo, gen: gen}
}

// ItemLabel devuelve el PDF de la etiqueta del item.
func (uc *LabelUseCase) ItemLabel(ctx context.Context, itemID int64) ([]byte, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	idents, err := uc.identRepo.ListByItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if len(idents) == 0 {
		return nil, domain.ErrNoIdentifiers
	}
	return uc.gen.GenerateItemLabel(ctx, item, idents)
}
