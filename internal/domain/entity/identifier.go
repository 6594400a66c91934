package entity

// IdentifierTypeEAN13 es el único tipo de identificador que expone la API.
const IdentifierTypeEAN13 = "EAN13"

// Identifier es un código escaneable (p. ej. EAN-13) vinculado a un único Item.
// Un Item puede tener varios (variantes de tamaño, reetiquetados).
type Identifier struct {
	ID         int64
	ItemID     int64
	Identifier string
	TypeID     int64
}
