package entity

import "github.com/shopspring/decimal"

// Item representa un artículo del inventario doméstico.
// Threshold es un punto de reorden orientativo; el motor de escaneo no lo aplica.
type Item struct {
	ID        int64
	Name      string
	Threshold *decimal.Decimal
}
