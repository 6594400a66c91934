package inventory_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/jhoicas/prepperstore-api/internal/application/dto"
	appinv "github.com/jhoicas/prepperstore-api/internal/application/inventory"
	"github.com/jhoicas/prepperstore-api/internal/domain"
	"github.com/jhoicas/prepperstore-api/internal/domain/entity"
	dominv "github.com/jhoicas/prepperstore-api/internal/domain/inventory"
	"github.com/jhoicas/prepperstore-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const barcode = "4006381333931"

type fixture struct {
	store *memory.Store
	uc    *appinv.ScanUseCase
	item  *entity.Item
}

// newFixture: ubicaciones 1 Pantry, 2 Basement, 3 Garage y un item con código vinculado.
func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	store.AddLocation(1, "Pantry")
	store.AddLocation(2, "Basement")
	store.AddLocation(3, "Garage")

	item, err := store.Create(ctx, "Rice 5kg", nil)
	require.NoError(t, err)
	typeID, ok, err := store.TypeIDByName(ctx, entity.IdentifierTypeEAN13)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, store.Link(ctx, item.ID, barcode, typeID))

	return fixture{store: store, uc: appinv.NewScanUseCase(store, store.Locations()), item: item}
}

func ptr(v int64) *int64 { return &v }

func (f fixture) scan(t *testing.T, mode string, preferred *int64) dominv.Result {
	t.Helper()
	res, err := f.uc.Scan(context.Background(), appinv.ScanInput{Barcode: barcode, Mode: mode, PreferredLocationID: preferred})
	require.NoError(t, err)
	return res
}

func amountAt(res dominv.Result, locationID int64) (int64, bool) {
	for _, l := range res.Locations() {
		if l.LocationID == locationID {
			return l.Amount, true
		}
	}
	return 0, false
}

func TestScan_Validacion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Scan(ctx, appinv.ScanInput{Barcode: "   ", Mode: "STATUS"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Barcode is required", verr.Message)

	_, err = f.uc.Scan(ctx, appinv.ScanInput{Barcode: barcode, Mode: "DELETE"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestScan_CodigoDesconocido(t *testing.T) {
	f := newFixture(t)

	for _, mode := range []string{"IN", "OUT", "STATUS"} {
		res, err := f.uc.Scan(context.Background(), appinv.ScanInput{Barcode: " 0000000000000 ", Mode: mode})
		require.NoError(t, err)
		assert.False(t, res.Known())
		assert.Equal(t, dominv.StatusUnknownIdentifier, res.Status())
		assert.Equal(t, "0000000000000", res.Barcode())
		assert.Equal(t, dominv.Mode(mode), res.Mode())
	}
}

func TestScan_StatusNoMuta(t *testing.T) {
	f := newFixture(t)
	f.store.SetStock(f.item.ID, 1, 4)

	res := f.scan(t, "STATUS", nil)
	assert.True(t, res.Known())
	_, hasChange := res.Change()
	_, hasWarning := res.Warning()
	assert.False(t, hasChange)
	assert.False(t, hasWarning)
	n, _ := amountAt(res, 1)
	assert.Equal(t, int64(4), n)

	again := f.scan(t, "STATUS", nil)
	assert.Equal(t, res.Locations(), again.Locations())
}

func TestScan_StatusSinStockDevuelveListaVacia(t *testing.T) {
	f := newFixture(t)

	res := f.scan(t, "STATUS", nil)
	assert.NotNil(t, res.Locations())
	assert.Empty(t, res.Locations())
	assert.Equal(t, "Rice 5kg", res.Item().Name)
}

func TestScanIn_SinUbicacionYSinStock_Advierte(t *testing.T) {
	f := newFixture(t)

	res := f.scan(t, "IN", nil)
	w, ok := res.Warning()
	require.True(t, ok)
	assert.Equal(t, dominv.WarningNoLocationSelectedForIn, w)
	assert.Empty(t, res.Locations())
}

func TestScanIn_UnicaUbicacionSeAutoselecciona(t *testing.T) {
	f := newFixture(t)
	f.store.SetStock(f.item.ID, 2, 0)

	res := f.scan(t, "IN", nil)
	c, ok := res.Change()
	require.True(t, ok)
	assert.Equal(t, dominv.ModeIn, c.Action)
	assert.Equal(t, int64(1), c.Quantity)
	assert.Equal(t, int64(2), c.LocationID)
	assert.Equal(t, "Basement", c.LocationName)
	assert.Equal(t, int64(0), c.PreviousAmount)
	assert.Equal(t, int64(1), c.NewAmount)
}

func TestScanIn_VariasUbicacionesSinPreferida_Advierte(t *testing.T) {
	f := newFixture(t)
	f.store.SetStock(f.item.ID, 1, 3)
	f.store.SetStock(f.item.ID, 2, 1)

	res := f.scan(t, "IN", nil)
	w, ok := res.Warning()
	require.True(t, ok)
	assert.Equal(t, dominv.WarningNoLocationSelectedForIn, w)
	n, _ := amountAt(res, 1)
	assert.Equal(t, int64(3), n, "una advertencia no muta")
}

func TestScanIn_PreferidaNuevaCreaFila(t *testing.T) {
	f := newFixture(t)
	f.store.SetStock(f.item.ID, 1, 3)

	res := f.scan(t, "IN", ptr(3))
	c, ok := res.Change()
	require.True(t, ok)
	assert.Equal(t, int64(3), c.LocationID)
	assert.Equal(t, "Garage", c.LocationName)
	assert.Equal(t, int64(0), c.PreviousAmount)
	assert.Equal(t, int64(1), c.NewAmount)

	n, found := amountAt(res, 3)
	require.True(t, found, "la relectura incluye la fila creada")
	assert.Equal(t, int64(1), n)
}

func TestScanIn_PreferidaExistenteIncrementa(t *testing.T) {
	f := newFixture(t)
	f.store.SetStock(f.item.ID, 1, 3)
	f.store.SetStock(f.item.ID, 2, 5)

	res := f.scan(t, "IN", ptr(2))
	c, ok := res.Change()
	require.True(t, ok)
	assert.Equal(t, int64(5), c.PreviousAmount)
	assert.Equal(t, int64(6), c.NewAmount)
	n, _ := amountAt(res, 2)
	assert.Equal(t, int64(6), n)
}

func TestScanIn_PreferidaInexistente_Advierte(t *testing.T) {
	f := newFixture(t)

	res := f.scan(t, "IN", ptr(99))
	w, ok := res.Warning()
	require.True(t, ok)
	assert.Equal(t, dominv.WarningNoLocationSelectedForIn, w)
}

func TestScanOut_SinStock_Advierte(t *testing.T) {
	f := newFixture(t)
	f.store.SetStock(f.item.ID, 1, 0)

	res := f.scan(t, "OUT", nil)
	w, ok := res.Warning()
	require.True(t, ok)
	assert.Equal(t, dominv.WarningNoStockAvailable, w)
}

func TestScanOut_EligeMayorCantidadYDesempataPorID(t *testing.T) {
	f := newFixture(t)
	f.store.SetStock(f.item.ID, 3, 5)
	f.store.SetStock(f.item.ID, 2, 5)
	f.store.SetStock(f.item.ID, 1, 2)

	res := f.scan(t, "OUT", nil)
	c, ok := res.Change()
	require.True(t, ok)
	assert.Equal(t, dominv.ModeOut, c.Action)
	assert.Equal(t, int64(2), c.LocationID)
	assert.Equal(t, int64(5), c.PreviousAmount)
	assert.Equal(t, int64(4), c.NewAmount)
}

func TestScanOut_PreferidaVacia_Advierte(t *testing.T) {
	f := newFixture(t)
	f.store.SetStock(f.item.ID, 1, 0)
	f.store.SetStock(f.item.ID, 2, 7)

	res := f.scan(t, "OUT", ptr(1))
	w, ok := res.Warning()
	require.True(t, ok)
	assert.Equal(t, dominv.WarningNoStockInSelectedLocation, w)
	n, _ := amountAt(res, 2)
	assert.Equal(t, int64(7), n, "no se cae a otra ubicación")
}

func TestScanOut_PreferidaConStock(t *testing.T) {
	f := newFixture(t)
	f.store.SetStock(f.item.ID, 1, 1)
	f.store.SetStock(f.item.ID, 2, 7)

	res := f.scan(t, "OUT", ptr(1))
	c, ok := res.Change()
	require.True(t, ok)
	assert.Equal(t, int64(1), c.LocationID)
	assert.Equal(t, int64(0), c.NewAmount)
}

func TestScanOut_PreferidaSinFilaUsaSeleccionAutomatica(t *testing.T) {
	f := newFixture(t)
	f.store.SetStock(f.item.ID, 2, 7)

	res := f.scan(t, "OUT", ptr(3))
	c, ok := res.Change()
	require.True(t, ok)
	assert.Equal(t, int64(2), c.LocationID)
	assert.Equal(t, int64(6), c.NewAmount)
}

func TestScan_InLuegoOutVuelveAlOriginal(t *testing.T) {
	f := newFixture(t)
	f.store.SetStock(f.item.ID, 1, 3)

	in := f.scan(t, "IN", ptr(1))
	out := f.scan(t, "OUT", ptr(1))

	ci, _ := in.Change()
	co, _ := out.Change()
	assert.Equal(t, int64(4), ci.NewAmount)
	assert.Equal(t, int64(3), co.NewAmount)
}

func TestScanOut_ConcurrenteNuncaBajaDeCero(t *testing.T) {
	f := newFixture(t)
	f.store.SetStock(f.item.ID, 1, 5)

	const workers = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		changed int
		warned  int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := f.uc.Scan(context.Background(), appinv.ScanInput{Barcode: barcode, Mode: "OUT"})
			assert.NoError(t, err)
			mu.Lock()
			defer mu.Unlock()
			if _, ok := res.Change(); ok {
				changed++
			} else if w, ok := res.Warning(); ok && w == dominv.WarningNoStockAvailable {
				warned++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, changed)
	assert.Equal(t, workers-5, warned)
	res := f.scan(t, "STATUS", nil)
	n, _ := amountAt(res, 1)
	assert.Equal(t, int64(0), n)
}

func TestScanFromRequest_FormaJSON(t *testing.T) {
	f := newFixture(t)
	f.store.SetStock(f.item.ID, 1, 2)

	resp, err := f.uc.ScanFromRequest(context.Background(), dto.ScanRequest{Barcode: barcode, Mode: "OUT"})
	require.NoError(t, err)
	known, ok := resp.(dto.KnownScanResponse)
	require.True(t, ok)
	assert.Equal(t, "known", known.ScanStatus())
	require.NotNil(t, known.Change)
	assert.Equal(t, "OUT", known.Change.Action)
	assert.Empty(t, known.Warning)

	resp, err = f.uc.ScanFromRequest(context.Background(), dto.ScanRequest{Barcode: "nope", Mode: "STATUS"})
	require.NoError(t, err)
	unknown, ok := resp.(dto.UnknownScanResponse)
	require.True(t, ok)
	assert.Equal(t, "unknown_identifier", unknown.ScanStatus())
}

func TestScanFromRequest_AvisoSerializaChangeNull(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.ScanFromRequest(context.Background(), dto.ScanRequest{Barcode: barcode, Mode: "OUT"})
	require.NoError(t, err)
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "no_stock_available", body["warning"])
	require.Contains(t, body, "change")
	assert.Nil(t, body["change"])

	resp, err = f.uc.ScanFromRequest(context.Background(), dto.ScanRequest{Barcode: barcode, Mode: "STATUS"})
	require.NoError(t, err)
	raw, err = json.Marshal(resp)
	require.NoError(t, err)
	body = map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.NotContains(t, body, "change")
	assert.NotContains(t, body, "warning")
}

// staleStock muestra stock en el snapshot pero pierde siempre la resta condicional,
// como si otra salida hubiera dejado la fila en cero entre lectura y escritura.
type staleStock struct {
	mu         sync.Mutex
	decrements int
	snapshots  int
}

func (s *staleStock) Snapshot(context.Context, string) ([]entity.SnapshotRow, error) {
	s.mu.Lock()
	s.snapshots++
	s.mu.Unlock()
	loc, name, amount := int64(1), "Pantry", int64(3)
	return []entity.SnapshotRow{{
		IdentifierID: 1, Identifier: barcode, ItemID: 7, ItemName: "Rice 5kg",
		LocationID: &loc, LocationName: &name, Amount: &amount,
	}}, nil
}

func (s *staleStock) Increment(context.Context, int64, int64) (int64, bool, error) {
	return 0, false, nil
}

func (s *staleStock) InsertOne(context.Context, int64, int64) (int64, error) { return 0, nil }

func (s *staleStock) DecrementIfPositive(context.Context, int64, int64) (int64, bool, error) {
	s.mu.Lock()
	s.decrements++
	s.mu.Unlock()
	return 0, false, nil
}

func (s *staleStock) Adjust(context.Context, int64, int64, int64) error { return nil }

func (s *staleStock) LevelsByItem(context.Context, int64) ([]entity.StockLevel, error) {
	return nil, nil
}

func TestScanOut_RestaCondicionalPerdidaEsAviso(t *testing.T) {
	stock := &staleStock{}
	uc := appinv.NewScanUseCase(stock, memory.New().Locations())

	for _, preferred := range []*int64{nil, ptr(1)} {
		res, err := uc.Scan(context.Background(), appinv.ScanInput{Barcode: barcode, Mode: "OUT", PreferredLocationID: preferred})
		require.NoError(t, err)
		w, ok := res.Warning()
		require.True(t, ok)
		assert.Equal(t, dominv.WarningNoStockAvailable, w)
		_, hasChange := res.Change()
		assert.False(t, hasChange)
		n, _ := amountAt(res, 1)
		assert.Equal(t, int64(3), n)
	}
	assert.Equal(t, 2, stock.decrements)
	assert.Equal(t, 2, stock.snapshots, "sin mutación no hay relectura")
}
