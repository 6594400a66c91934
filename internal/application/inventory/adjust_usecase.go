package inventory

import (
	"context"

	"github.com/jhoicas/prepperstore-api/internal/application/dto"
	"github.com/jhoicas/prepperstore-api/internal/domain"
	"github.com/jhoicas/prepperstore-api/internal/domain/repository"
)

// AdjustStockUseCase ajuste administrativo: delta arbitrario en una ubicación explícita,
// sin selección automática. El resultado se acota en cero.
type AdjustStockUseCase struct {
	itemRepo     repository.ItemRepository
	locationRepo repository.LocationRepository
	stockRepo    repository.StockRepository
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(
	itemRepo repository.ItemRepository,
	locationRepo repository.LocationRepository,
	stockRepo repository.StockRepository,
) *AdjustStockUseCase {
	return &AdjustStockUseCase{itemRepo: itemRepo, locationRepo: locationRepo, stockRepo: stockRepo}
}

// AdjustInput entrada de POST /api/stock/adjust ya validada.
type AdjustInput struct {
	ItemID     int64
	LocationID int64
	Delta      int64
}

// AdjustFromRequest valida el body: los tres campos son obligatorios.
func (uc *AdjustStockUseCase) AdjustFromRequest(ctx context.Context, in dto.AdjustStockRequest) (*dto.ItemStockResponse, error) {
	if in.ItemID == nil || in.LocationID == nil || in.Delta == nil {
		return nil, domain.Invalid("itemId, locationId, and delta must be numbers")
	}
	return uc.Adjust(ctx, AdjustInput{ItemID: *in.ItemID, LocationID: *in.LocationID, Delta: *in.Delta})
}

// Adjust comprueba item y ubicación, aplica el delta y devuelve el stock completo del item.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, in AdjustInput) (*dto.ItemStockResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	loc, err := uc.locationRepo.GetByID(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrLocationNotFound
	}

	if err := uc.stockRepo.Adjust(ctx, item.ID, loc.ID, in.Delta); err != nil {
		return nil, err
	}
	levels, err := uc.stockRepo.LevelsByItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ItemStockResponse{
		Item:      dto.NewItemResponse(*item),
		Locations: dto.NewStockLevels(levels),
	}, nil
}
