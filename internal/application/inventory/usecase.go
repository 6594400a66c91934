package inventory

import (
	"context"
	"strings"

	"github.com/jhoicas/prepperstore-api/internal/application/dto"
	"github.com/jhoicas/prepperstore-api/internal/domain"
	"github.com/jhoicas/prepperstore-api/internal/domain/entity"
	dominv "github.com/jhoicas/prepperstore-api/internal/domain/inventory"
	"github.com/jhoicas/prepperstore-api/internal/domain/repository"
)

// ScanUseCase resuelve un código escaneado y aplica el ajuste de ±1 según el modo.
// No usa bloqueos: la resta condicional (amount > 0) en el almacén es la única
// protección frente a salidas concurrentes sobre la misma fila.
type ScanUseCase struct {
	stockRepo    repository.StockRepository
	locationRepo repository.LocationRepository
}

// NewScanUseCase construye el motor de escaneo.
func NewScanUseCase(stockRepo repository.StockRepository, locationRepo repository.LocationRepository) *ScanUseCase {
	return &ScanUseCase{stockRepo: stockRepo, locationRepo: locationRepo}
}

// ScanInput entrada del motor. PreferredLocationID nil = selección automática.
type ScanInput struct {
	Barcode             string
	Mode                string
	PreferredLocationID *int64
}

// ScanFromRequest adapta el request HTTP y mapea el resultado a su forma JSON.
func (uc *ScanUseCase) ScanFromRequest(ctx context.Context, in dto.ScanRequest) (dto.ScanResponse, error) {
	res, err := uc.Scan(ctx, ScanInput{
		Barcode:             in.Barcode,
		Mode:                in.Mode,
		PreferredLocationID: in.PreferredLocationID,
	})
	if err != nil {
		return nil, err
	}
	return toScanResponse(res), nil
}

// Scan valida la entrada y ejecuta el algoritmo de resolución.
// Los estados esperados (código desconocido, sin stock, sin ubicación) son resultados,
// no errores; solo los fallos del almacén se devuelven como error.
func (uc *ScanUseCase) Scan(ctx context.Context, in ScanInput) (dominv.Result, error) {
	barcode := strings.TrimSpace(in.Barcode)
	if barcode == "" {
		return dominv.Result{}, domain.Invalid("Barcode is required")
	}
	mode, err := dominv.ParseMode(in.Mode)
	if err != nil {
		return dominv.Result{}, domain.Invalid("mode must be one of IN, OUT, STATUS")
	}

	rows, err := uc.stockRepo.Snapshot(ctx, barcode)
	if err != nil {
		return dominv.Result{}, err
	}
	if len(rows) == 0 {
		return dominv.Unknown(mode, barcode), nil
	}

	s := scan{
		mode:      mode,
		barcode:   barcode,
		code:      rows[0].Identifier,
		item:      dominv.ItemFromSnapshot(rows),
		rows:      rows,
		preferred: in.PreferredLocationID,
	}
	switch mode {
	case dominv.ModeIn:
		return uc.scanIn(ctx, s)
	case dominv.ModeOut:
		return uc.scanOut(ctx, s)
	default:
		return dominv.Observed(mode, s.code, s.item, dominv.BuildLocations(rows)), nil
	}
}

// scan agrupa el estado de un escaneo ya resuelto a un item.
type scan struct {
	mode      dominv.Mode
	barcode   string // código recortado, clave del snapshot
	code      string // identificador tal como está registrado
	item      entity.Item
	rows      []entity.SnapshotRow
	preferred *int64
}

func (s scan) warned(w dominv.Warning) dominv.Result {
	return dominv.Warned(s.mode, s.code, s.item, dominv.BuildLocations(s.rows), w)
}

// scanIn: ubicación preferida (existente o nueva) o la única con fila de stock.
func (uc *ScanUseCase) scanIn(ctx context.Context, s scan) (dominv.Result, error) {
	var (
		target entity.StockLevel
		hasRow bool
	)
	if s.preferred != nil {
		if l, ok := dominv.FindLocation(s.rows, *s.preferred); ok {
			target, hasRow = l, true
		} else {
			loc, err := uc.locationRepo.GetByID(ctx, *s.preferred)
			if err != nil {
				return dominv.Result{}, err
			}
			if loc == nil {
				return s.warned(dominv.WarningNoLocationSelectedForIn), nil
			}
			target = entity.StockLevel{LocationID: loc.ID, LocationName: nameOrUnknown(loc.Name)}
		}
	} else {
		// Con cero o varias ubicaciones la ambigüedad nunca se resuelve en silencio.
		levels := dominv.BuildLocations(s.rows)
		if len(levels) != 1 {
			return s.warned(dominv.WarningNoLocationSelectedForIn), nil
		}
		target, hasRow = levels[0], true
	}

	newAmount, err := uc.increment(ctx, s.item.ID, target.LocationID, hasRow)
	if err != nil {
		return dominv.Result{}, err
	}
	return uc.changed(ctx, s, target, newAmount)
}

func (uc *ScanUseCase) increment(ctx context.Context, itemID, locationID int64, hasRow bool) (int64, error) {
	if hasRow {
		n, ok, err := uc.stockRepo.Increment(ctx, itemID, locationID)
		if err != nil || ok {
			return n, err
		}
		// La fila desapareció entre la lectura y la escritura: se crea de nuevo.
	}
	return uc.stockRepo.InsertOne(ctx, itemID, locationID)
}

// scanOut: ubicación preferida con stock o la de mayor cantidad (empate → menor id).
func (uc *ScanUseCase) scanOut(ctx context.Context, s scan) (dominv.Result, error) {
	var (
		chosen entity.StockLevel
		picked bool
	)
	if s.preferred != nil {
		if l, ok := dominv.FindLocation(s.rows, *s.preferred); ok {
			if l.Amount <= 0 {
				return s.warned(dominv.WarningNoStockInSelectedLocation), nil
			}
			chosen, picked = l, true
		}
		// Ubicación preferida sin fila de stock: se cae a la selección automática.
	}
	if !picked {
		l, ok := dominv.PickOutLocation(s.rows)
		if !ok {
			return s.warned(dominv.WarningNoStockAvailable), nil
		}
		chosen = l
	}

	newAmount, ok, err := uc.stockRepo.DecrementIfPositive(ctx, s.item.ID, chosen.LocationID)
	if err != nil {
		return dominv.Result{}, err
	}
	if !ok {
		// Otra salida concurrente dejó la fila en cero.
		return s.warned(dominv.WarningNoStockAvailable), nil
	}
	return uc.changed(ctx, s, chosen, newAmount)
}

// changed relee el snapshot para devolver cantidades frescas junto al cambio aplicado.
func (uc *ScanUseCase) changed(ctx context.Context, s scan, at entity.StockLevel, newAmount int64) (dominv.Result, error) {
	fresh, err := uc.stockRepo.Snapshot(ctx, s.barcode)
	if err != nil {
		return dominv.Result{}, err
	}
	return dominv.Changed(s.mode, s.code, s.item, dominv.BuildLocations(fresh), dominv.Change{
		Action:         s.mode,
		Quantity:       1,
		LocationID:     at.LocationID,
		LocationName:   at.LocationName,
		PreviousAmount: at.Amount,
		NewAmount:      newAmount,
	}), nil
}

func nameOrUnknown(name string) string {
	if name == "" {
		return entity.UnknownLocationName
	}
	return name
}

func toScanResponse(r dominv.Result) dto.ScanResponse {
	if !r.Known() {
		return dto.UnknownScanResponse{
			Status:  string(r.Status()),
			Mode:    string(r.Mode()),
			Barcode: r.Barcode(),
		}
	}
	out := dto.KnownScanResponse{
		Status:    string(r.Status()),
		Mode:      string(r.Mode()),
		Barcode:   r.Barcode(),
		Item:      dto.NewItemResponse(r.Item()),
		Locations: dto.NewStockLevels(r.Locations()),
	}
	if c, ok := r.Change(); ok {
		out.Change = &dto.ChangeResponse{
			Action:         string(c.Action),
			Quantity:       c.Quantity,
			LocationID:     c.LocationID,
			LocationName:   c.LocationName,
			PreviousAmount: c.PreviousAmount,
			NewAmount:      c.NewAmount,
		}
	}
	if w, ok := r.Warning(); ok {
		out.Warning = string(w)
	}
	return out
}
