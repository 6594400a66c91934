package dto

import "github.com/jhoicas/prepperstore-api/internal/domain/entity"

// NewItemResponse mapea la entidad a su salida JSON (threshold numérico o null).
func NewItemResponse(it entity.Item) ItemResponse {
	out := ItemResponse{ID: it.ID, Name: it.Name}
	if it.Threshold != nil {
		f := it.Threshold.InexactFloat64()
		out.Threshold = &f
	}
	return out
}

// NewStockLevels mapea niveles de stock; nunca devuelve nil.
func NewStockLevels(levels []entity.StockLevel) []StockLevelResponse {
	out := make([]StockLevelResponse, 0, len(levels))
	for _, l := range levels {
		out = append(out, StockLevelResponse{LocationID: l.LocationID, LocationName: l.LocationName, Amount: l.Amount})
	}
	return out
}
