package dto

import "encoding/json"

// CreateItemRequest body para POST /api/items.
// Threshold se recibe en crudo para distinguir ausente, null y tipos inválidos.
type CreateItemRequest struct {
	Name      *string         `json:"name"`
	Threshold json.RawMessage `json:"threshold"`
}

// ItemResponse salida de un item.
type ItemResponse struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Threshold *float64 `json:"threshold"`
}

// ItemListResponse respuesta de GET /api/items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// LinkIdentifierRequest body para POST /api/item-identifiers.
type LinkIdentifierRequest struct {
	ItemID     *int64  `json:"itemId"`
	Identifier *string `json:"identifier"`
}
