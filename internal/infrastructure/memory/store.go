// Package memory implementa los puertos de repositorio en memoria.
// Un único mutex serializa cada operación, igual que la atomicidad por fila de
// PostgreSQL serializa las sentencias UPDATE condicionales.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/prepperstore-api/internal/domain"
	"github.com/jhoicas/prepperstore-api/internal/domain/entity"
	"github.com/jhoicas/prepperstore-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	_ repository.ItemRepository       = (*Store)(nil)
	_ repository.IdentifierRepository = (*Store)(nil)
	_ repository.StockRepository      = (*Store)(nil)
	_ repository.LocationRepository   = locationView{}
)

type stockKey struct{ itemID, locationID int64 }

// Store almacén en memoria. El valor cero no es usable; usar New.
type Store struct {
	mu          sync.Mutex
	seq         int64
	items       map[int64]entity.Item
	types       map[string]int64
	identifiers []entity.Identifier
	locations   map[int64]entity.Location
	stock       map[stockKey]*entity.Stock
}

// New crea un almacén vacío con el tipo de identificador EAN13 sembrado,
// como hacen las migraciones.
func New() *Store {
	s := &Store{
		items:     make(map[int64]entity.Item),
		types:     make(map[string]int64),
		locations: make(map[int64]entity.Location),
		stock:     make(map[stockKey]*entity.Stock),
	}
	s.types[entity.IdentifierTypeEAN13] = s.next()
	return s
}

func (s *Store) next() int64 {
	s.seq++
	return s.seq
}

// AddLocation siembra una ubicación con id explícito (datos de referencia).
func (s *Store) AddLocation(id int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations[id] = entity.Location{ID: id, Name: name}
}

// SetStock fija la cantidad de una fila (solo para preparar escenarios).
func (s *Store) SetStock(itemID, locationID, amount int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := stockKey{itemID, locationID}
	if row, ok := s.stock[k]; ok {
		row.Amount = amount
		return
	}
	s.stock[k] = &entity.Stock{ID: s.next(), ItemID: itemID, LocationID: locationID, Amount: amount}
}

// RemoveIdentifierType elimina un tipo de identificador (simula datos de referencia ausentes).
func (s *Store) RemoveIdentifierType(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.types, name)
}

// ── items ─────────────────────────────────────────────────────────────────────

func (s *Store) Create(_ context.Context, name string, threshold *decimal.Decimal) (*entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := entity.Item{ID: s.next(), Name: name, Threshold: threshold}
	s.items[it.ID] = it
	return &it, nil
}

func (s *Store) GetByID(_ context.Context, id int64) (*entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

// ListByName ordena con collation Unicode para aproximar el ORDER BY de PostgreSQL.
func (s *Store) ListByName(_ context.Context) ([]*entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*entity.Item, 0, len(s.items))
	for _, it := range s.items {
		it := it
		list = append(list, &it)
	}
	c := collate.New(language.Und)
	sort.Slice(list, func(i, j int) bool {
		if cmp := c.CompareString(list[i].Name, list[j].Name); cmp != 0 {
			return cmp < 0
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

// ── identificadores ───────────────────────────────────────────────────────────

func (s *Store) TypeIDByName(_ context.Context, name string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.types[name]
	return id, ok, nil
}

func (s *Store) Link(_ context.Context, itemID int64, identifier string, typeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ident := range s.identifiers {
		if ident.Identifier == identifier {
			return domain.ErrDuplicate
		}
	}
	s.identifiers = append(s.identifiers, entity.Identifier{
		ID: s.next(), ItemID: itemID, Identifier: identifier, TypeID: typeID,
	})
	return nil
}

func (s *Store) ListByItem(_ context.Context, itemID int64) ([]*entity.Identifier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []*entity.Identifier
	for _, ident := range s.identifiers {
		if ident.ItemID == itemID {
			ident := ident
			list = append(list, &ident)
		}
	}
	return list, nil
}

// ── ubicaciones ───────────────────────────────────────────────────────────────

// Locations expone el puerto LocationRepository (GetByID colisiona con el de items).
func (s *Store) Locations() repository.LocationRepository { return locationView{s} }

type locationView struct{ s *Store }

func (v locationView) GetByID(_ context.Context, id int64) (*entity.Location, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	loc, ok := v.s.locations[id]
	if !ok {
		return nil, nil
	}
	return &loc, nil
}

func (v locationView) List(_ context.Context) ([]*entity.Location, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	list := make([]*entity.Location, 0, len(v.s.locations))
	for _, loc := range v.s.locations {
		loc := loc
		list = append(list, &loc)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// ── stock ─────────────────────────────────────────────────────────────────────

// Snapshot reproduce el LEFT JOIN: una fila por stock del item, o una sola fila
// sin ubicación si el item no tiene stock.
func (s *Store) Snapshot(_ context.Context, identifier string) ([]entity.SnapshotRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []entity.SnapshotRow
	for _, ident := range s.identifiers {
		if ident.Identifier != identifier {
			continue
		}
		it, ok := s.items[ident.ItemID]
		if !ok {
			continue
		}
		base := entity.SnapshotRow{
			IdentifierID:  ident.ID,
			Identifier:    ident.Identifier,
			ItemID:        it.ID,
			ItemName:      it.Name,
			ItemThreshold: it.Threshold,
		}
		stocked := false
		for _, st := range s.sortedStock() {
			if st.ItemID != it.ID {
				continue
			}
			r := base
			locID, amount := st.LocationID, st.Amount
			r.LocationID, r.Amount = &locID, &amount
			if loc, ok := s.locations[locID]; ok {
				name := loc.Name
				r.LocationName = &name
			}
			rows = append(rows, r)
			stocked = true
		}
		if !stocked {
			rows = append(rows, base)
		}
	}
	return rows, nil
}

func (s *Store) sortedStock() []*entity.Stock {
	list := make([]*entity.Stock, 0, len(s.stock))
	for _, st := range s.stock {
		list = append(list, st)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (s *Store) Increment(_ context.Context, itemID, locationID int64) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.stock[stockKey{itemID, locationID}]
	if !ok {
		return 0, false, nil
	}
	row.Amount++
	return row.Amount, true, nil
}

func (s *Store) InsertOne(_ context.Context, itemID, locationID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := stockKey{itemID, locationID}
	if row, ok := s.stock[k]; ok {
		row.Amount++
		return row.Amount, nil
	}
	s.stock[k] = &entity.Stock{ID: s.next(), ItemID: itemID, LocationID: locationID, Amount: 1}
	return 1, nil
}

func (s *Store) DecrementIfPositive(_ context.Context, itemID, locationID int64) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.stock[stockKey{itemID, locationID}]
	if !ok || row.Amount <= 0 {
		return 0, false, nil
	}
	row.Amount--
	return row.Amount, true, nil
}

func (s *Store) Adjust(_ context.Context, itemID, locationID, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := stockKey{itemID, locationID}
	if row, ok := s.stock[k]; ok {
		row.Amount = max(row.Amount+delta, 0)
		return nil
	}
	if delta > 0 {
		s.stock[k] = &entity.Stock{ID: s.next(), ItemID: itemID, LocationID: locationID, Amount: delta}
	}
	return nil
}

func (s *Store) LevelsByItem(_ context.Context, itemID int64) ([]entity.StockLevel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var levels []entity.StockLevel
	for _, st := range s.stock {
		if st.ItemID != itemID {
			continue
		}
		loc, ok := s.locations[st.LocationID]
		if !ok {
			continue // JOIN interno con location
		}
		levels = append(levels, entity.StockLevel{
			LocationID:   st.LocationID,
			LocationName: nameOrUnknown(loc.Name),
			Amount:       st.Amount,
		})
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].LocationID < levels[j].LocationID })
	return levels, nil
}

func nameOrUnknown(name string) string {
	if name == "" {
		return entity.UnknownLocationName
	}
	return name
}
