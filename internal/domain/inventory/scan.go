// Package inventory contiene la lógica de dominio del escaneo: selección de ubicación y
// el resultado de un escaneo como variante etiquetada.
package inventory

import (
	"fmt"
	"strings"

	"github.com/jhoicas/prepperstore-api/internal/domain/entity"
)

// Mode es la intención del escaneo.
type Mode string

const (
	ModeIn     Mode = "IN"
	ModeOut    Mode = "OUT"
	ModeStatus Mode = "STATUS"
)

// ParseMode valida el modo recibido en la petición (sensible a mayúsculas, como el cliente).
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.TrimSpace(s)); m {
	case ModeIn, ModeOut, ModeStatus:
		return m, nil
	}
	return "", fmt.Errorf("modo de escaneo desconocido %q", s)
}

// Warning es un resultado esperado en el que no se aplicó ninguna mutación.
type Warning string

const (
	WarningNoStockAvailable          Warning = "no_stock_available"
	WarningNoLocationSelectedForIn   Warning = "no_location_selected_for_in"
	WarningNoStockInSelectedLocation Warning = "no_stock_in_selected_location"
)

// Status discrimina el resultado del escaneo.
type Status string

const (
	StatusUnknownIdentifier Status = "unknown_identifier"
	StatusKnown             Status = "known"
)

// Change describe la mutación aplicada por un escaneo IN/OUT.
type Change struct {
	Action         Mode
	Quantity       int64
	LocationID     int64
	LocationName   string
	PreviousAmount int64
	NewAmount      int64
}

// Result es la variante Unknown | Known{change | warning | ninguno}.
// Solo se construye con Unknown, Observed, Changed y Warned, por lo que change y
// warning nunca aparecen juntos.
type Result struct {
	status    Status
	mode      Mode
	barcode   string
	item      entity.Item
	locations []entity.StockLevel
	change    *Change
	warning   Warning
}

// Unknown es el resultado para un código sin identificador registrado.
func Unknown(mode Mode, barcode string) Result {
	return Result{status: StatusUnknownIdentifier, mode: mode, barcode: barcode}
}

// Observed es un resultado conocido sin mutación ni aviso (modo STATUS).
func Observed(mode Mode, barcode string, item entity.Item, locations []entity.StockLevel) Result {
	return Result{
		status:    StatusKnown,
		mode:      mode,
		barcode:   barcode,
		item:      item,
		locations: nonNil(locations),
	}
}

// Changed es un resultado conocido con mutación aplicada.
func Changed(mode Mode, barcode string, item entity.Item, locations []entity.StockLevel, change Change) Result {
	r := Observed(mode, barcode, item, locations)
	r.change = &change
	return r
}

// Warned es un resultado conocido en el que la mutación se omitió.
func Warned(mode Mode, barcode string, item entity.Item, locations []entity.StockLevel, w Warning) Result {
	r := Observed(mode, barcode, item, locations)
	r.warning = w
	return r
}

func (r Result) Status() Status                 { return r.status }
func (r Result) Mode() Mode                     { return r.mode }
func (r Result) Barcode() string                { return r.barcode }
func (r Result) Known() bool                    { return r.status == StatusKnown }
func (r Result) Item() entity.Item              { return r.item }
func (r Result) Locations() []entity.StockLevel { return r.locations }

// Change devuelve la mutación aplicada, si la hubo.
func (r Result) Change() (Change, bool) {
	if r.change == nil {
		return Change{}, false
	}
	return *r.change, true
}

// Warning devuelve el aviso, si la mutación se omitió.
func (r Result) Warning() (Warning, bool) {
	return r.warning, r.warning != ""
}

func nonNil(l []entity.StockLevel) []entity.StockLevel {
	if l == nil {
		return []entity.StockLevel{}
	}
	return l
}
