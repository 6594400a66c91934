package dto

import "encoding/json"

// ScanRequest body para POST /api/scan.
type ScanRequest struct {
	Barcode             string `json:"barcode"`
	Mode                string `json:"mode"`
	PreferredLocationID *int64 `json:"preferredLocationId"`
}

// ScanResponse es UnknownScanResponse o KnownScanResponse.
type ScanResponse interface {
	ScanStatus() string
}

// UnknownScanResponse el código no está vinculado a ningún item.
type UnknownScanResponse struct {
	Status  string `json:"status"`
	Mode    string `json:"mode"`
	Barcode string `json:"barcode"`
}

func (r UnknownScanResponse) ScanStatus() string { return r.Status }

// KnownScanResponse item encontrado; Change y Warning son excluyentes.
type KnownScanResponse struct {
	Status    string               `json:"status"`
	Mode      string               `json:"mode"`
	Barcode   string               `json:"barcode"`
	Item      ItemResponse         `json:"item"`
	Locations []StockLevelResponse `json:"locations"`
	Change    *ChangeResponse      `json:"change,omitempty"`
	Warning   string               `json:"warning,omitempty"`
}

func (r KnownScanResponse) ScanStatus() string { return r.Status }

// MarshalJSON emite "change": null junto a un aviso; sin aviso ni cambio (STATUS)
// la clave se omite.
func (r KnownScanResponse) MarshalJSON() ([]byte, error) {
	type plain KnownScanResponse
	if r.Warning == "" {
		return json.Marshal(plain(r))
	}
	return json.Marshal(struct {
		plain
		Change *ChangeResponse `json:"change"`
	}{plain: plain(r)})
}

// ChangeResponse mutación aplicada por el escaneo.
type ChangeResponse struct {
	Action         string `json:"action"`
	Quantity       int64  `json:"quantity"`
	LocationID     int64  `json:"locationId"`
	LocationName   string `json:"locationName"`
	PreviousAmount int64  `json:"previousAmount"`
	NewAmount      int64  `json:"newAmount"`
}
