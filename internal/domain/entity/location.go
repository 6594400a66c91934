package entity

// UnknownLocationName se usa cuando una fila de stock apunta a una ubicación sin nombre.
const UnknownLocationName = "Unknown location"

// Location es un lugar de almacenamiento (dato de referencia, sembrado por migraciones).
type Location struct {
	ID   int64
	Name string
}
