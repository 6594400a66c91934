package dto

// AdjustStockRequest body para POST /api/stock/adjust.
type AdjustStockRequest struct {
	ItemID     *int64 `json:"itemId"`
	LocationID *int64 `json:"locationId"`
	Delta      *int64 `json:"delta"`
}

// ItemStockResponse item con su stock por ubicación.
type ItemStockResponse struct {
	Item      ItemResponse         `json:"item"`
	Locations []StockLevelResponse `json:"locations"`
}
