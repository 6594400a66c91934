package dto

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LocationListResponse respuesta de GET /api/locations.
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// StockLevelResponse stock de un item en una ubicación.
type StockLevelResponse struct {
	LocationID   int64  `json:"locationId"`
	LocationName string `json:"locationName"`
	Amount       int64  `json:"amount"`
}
