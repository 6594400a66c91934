package entity

import "github.com/shopspring/decimal"

// Stock es la cantidad de un Item en una Location.
// Existe como mucho una fila por (ItemID, LocationID) y Amount nunca es negativo.
type Stock struct {
	ID         int64
	ItemID     int64
	LocationID int64
	Amount     int64
}

// StockLevel es el stock de un Item en una ubicación con su nombre resuelto.
type StockLevel struct {
	LocationID   int64
	LocationName string
	Amount       int64
}

// SnapshotRow es una fila del join identificador → item → (left) stock → (left) ubicación.
// Los campos de ubicación son nil cuando el item no tiene ninguna fila de stock.
type SnapshotRow struct {
	IdentifierID  int64
	Identifier    string
	ItemID        int64
	ItemName      string
	ItemThreshold *decimal.Decimal
	LocationID    *int64
	LocationName  *string
	Amount        *int64
}
