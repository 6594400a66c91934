package inventory

import "github.com/jhoicas/prepperstore-api/internal/domain/entity"

// ItemFromSnapshot toma los campos del item de la primera fila (canónica).
// rows no debe estar vacío.
func ItemFromSnapshot(rows []entity.SnapshotRow) entity.Item {
	first := rows[0]
	return entity.Item{ID: first.ItemID, Name: first.ItemName, Threshold: first.ItemThreshold}
}

// BuildLocations descarta filas sin ubicación y aplica los valores por defecto
// (nombre "Unknown location", cantidad 0).
func BuildLocations(rows []entity.SnapshotRow) []entity.StockLevel {
	levels := make([]entity.StockLevel, 0, len(rows))
	for _, r := range rows {
		if r.LocationID == nil {
			continue
		}
		levels = append(levels, levelOf(r))
	}
	return levels
}

// FindLocation busca la fila de stock del item en la ubicación indicada.
func FindLocation(rows []entity.SnapshotRow, locationID int64) (entity.StockLevel, bool) {
	for _, r := range rows {
		if r.LocationID != nil && *r.LocationID == locationID {
			return levelOf(r), true
		}
	}
	return entity.StockLevel{}, false
}

// PickOutLocation elige de dónde sacar stock: la ubicación con mayor cantidad
// (estrictamente positiva); empate → menor location_id. ok=false si no hay candidatos.
func PickOutLocation(rows []entity.SnapshotRow) (entity.StockLevel, bool) {
	var (
		chosen entity.StockLevel
		found  bool
	)
	for _, l := range BuildLocations(rows) {
		if l.Amount <= 0 {
			continue
		}
		if !found || l.Amount > chosen.Amount ||
			(l.Amount == chosen.Amount && l.LocationID < chosen.LocationID) {
			chosen = l
			found = true
		}
	}
	return chosen, found
}

func levelOf(r entity.SnapshotRow) entity.StockLevel {
	l := entity.StockLevel{LocationID: *r.LocationID, LocationName: entity.UnknownLocationName}
	if r.LocationName != nil {
		l.LocationName = *r.LocationName
	}
	if r.Amount != nil {
		l.Amount = *r.Amount
	}
	return l
}
