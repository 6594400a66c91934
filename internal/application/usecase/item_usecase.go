package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/jhoicas/prepperstore-api/internal/application/dto"
	"github.com/jhoicas/prepperstore-api/internal/domain"
	"github.com/jhoicas/prepperstore-api/internal/domain/entity"
	"github.com/jhoicas/prepperstore-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// ItemUseCase alta y listado de items, y vínculo de identificadores (códigos de barras).
type ItemUseCase struct {
	itemRepo  repository.ItemRepository
	identRepo repository.IdentifierRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.ItemRepository, identRepo repository.IdentifierRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, identRepo: identRepo}
}

// Create valida nombre y umbral y crea el item.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	name := ""
	if in.Name != nil {
		name = norm.NFC.String(strings.TrimSpace(*in.Name))
	}
	if name == "" {
		return nil, domain.Invalid("name must be a non-empty string")
	}
	threshold, err := ParseThreshold(in.Threshold)
	if err != nil {
		return nil, err
	}
	item, err := uc.itemRepo.Create(ctx, name, threshold)
	if err != nil {
		return nil, err
	}
	out := dto.NewItemResponse(*item)
	return &out, nil
}

// ParseThreshold acepta ausente, null o un número JSON finito.
func ParseThreshold(raw json.RawMessage) (*decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil || raw[0] == '"' {
		return nil, domain.Invalid("threshold must be a number or null")
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return nil, domain.Invalid("threshold must be a number or null")
	}
	return &d, nil
}

// List devuelve los items en orden alfabético.
func (uc *ItemUseCase) List(ctx context.Context) (*dto.ItemListResponse, error) {
	items, err := uc.itemRepo.ListByName(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.ItemListResponse{Items: make([]dto.ItemResponse, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, dto.NewItemResponse(*it))
	}
	return out, nil
}

// LinkIdentifier asocia un código al item con el tipo EAN13, resuelto por nombre en cada llamada.
func (uc *ItemUseCase) LinkIdentifier(ctx context.Context, in dto.LinkIdentifierRequest) error {
	if in.ItemID == nil {
		return domain.Invalid("itemId must be a number")
	}
	identifier := ""
	if in.Identifier != nil {
		identifier = strings.TrimSpace(*in.Identifier)
	}
	if identifier == "" {
		return domain.Invalid("identifier must be a non-empty string")
	}

	item, err := uc.itemRepo.GetByID(ctx, *in.ItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemNotFound
	}
	typeID, ok, err := uc.identRepo.TypeIDByName(ctx, entity.IdentifierTypeEAN13)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrIdentifierTypeMissing
	}
	return uc.identRepo.Link(ctx, item.ID, identifier, typeID)
}
