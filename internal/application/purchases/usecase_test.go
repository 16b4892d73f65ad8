package purchases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-wms/internal/application/purchases"
	"github.com/tu-usuario/almacen-wms/internal/application/stock"
	"github.com/tu-usuario/almacen-wms/internal/domain"
	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. La "transacción" acumula escrituras y solo las publica si
// el callback termina sin error, para poder verificar el todo-o-nada de la
// recepción con el motor real por debajo.
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	purchases map[string]*entity.Purchase
	items     map[string][]*entity.PurchaseItem // por purchaseID
	levels    map[string]*entity.StockLevel     // por product|warehouse|shelf
	ledger    []*entity.StockMovement
}

func newMemState() *memState {
	return &memState{
		purchases: map[string]*entity.Purchase{},
		items:     map[string][]*entity.PurchaseItem{},
		levels:    map[string]*entity.StockLevel{},
	}
}

func (s *memState) clone() *memState {
	cp := newMemState()
	for k, v := range s.purchases {
		p := *v
		cp.purchases[k] = &p
	}
	for k, list := range s.items {
		for _, it := range list {
			c := *it
			cp.items[k] = append(cp.items[k], &c)
		}
	}
	for k, v := range s.levels {
		lv := *v
		cp.levels[k] = &lv
	}
	cp.ledger = append(cp.ledger, s.ledger...)
	return cp
}

func lvKey(productID, warehouseID string, shelfID *string) string {
	k := productID + "|" + warehouseID + "|"
	if shelfID != nil {
		k += *shelfID
	}
	return k
}

// memPurchaseRepo trabaja sobre el snapshot de la tx; head apunta al estado
// confirmado más reciente para modelar el lock de fila (un SELECT FOR UPDATE
// espera al que confirma primero y relee la versión confirmada, no la foto).
type memPurchaseRepo struct {
	st   *memState
	head **memState
}

func (r *memPurchaseRepo) Create(p *entity.Purchase) error {
	c := *p
	r.st.purchases[p.ID] = &c
	return nil
}
func (r *memPurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	p, ok := r.st.purchases[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}
func (r *memPurchaseRepo) GetByIDForUpdate(id string) (*entity.Purchase, error) {
	if r.head != nil {
		p, ok := (*r.head).purchases[id]
		if !ok {
			return nil, nil
		}
		c := *p
		return &c, nil
	}
	return r.GetByID(id)
}
func (r *memPurchaseRepo) Update(p *entity.Purchase) error {
	c := *p
	r.st.purchases[p.ID] = &c
	return nil
}
func (r *memPurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) { return nil, nil }
func (r *memPurchaseRepo) GetItem(purchaseID, productID string) (*entity.PurchaseItem, error) {
	for _, it := range r.st.items[purchaseID] {
		if it.ProductID == productID {
			c := *it
			return &c, nil
		}
	}
	return nil, nil
}
func (r *memPurchaseRepo) CreateItem(item *entity.PurchaseItem) error {
	c := *item
	r.st.items[item.PurchaseID] = append(r.st.items[item.PurchaseID], &c)
	return nil
}
func (r *memPurchaseRepo) UpdateItemQuantity(item *entity.PurchaseItem) error {
	for i, it := range r.st.items[item.PurchaseID] {
		if it.ID == item.ID {
			c := *item
			r.st.items[item.PurchaseID][i] = &c
		}
	}
	return nil
}
func (r *memPurchaseRepo) DeleteItem(purchaseID, itemID string) error {
	list := r.st.items[purchaseID]
	out := list[:0]
	for _, it := range list {
		if it.ID != itemID {
			out = append(out, it)
		}
	}
	r.st.items[purchaseID] = out
	return nil
}
func (r *memPurchaseRepo) ListItems(purchaseID string) ([]*entity.PurchaseItem, error) {
	var out []*entity.PurchaseItem
	for _, it := range r.st.items[purchaseID] {
		c := *it
		out = append(out, &c)
	}
	return out, nil
}

type memLevelRepo struct{ st *memState }

func (r *memLevelRepo) Get(productID, warehouseID string, shelfID *string) (*entity.StockLevel, error) {
	return r.GetForUpdate(productID, warehouseID, shelfID)
}
func (r *memLevelRepo) GetForUpdate(productID, warehouseID string, shelfID *string) (*entity.StockLevel, error) {
	k := lvKey(productID, warehouseID, shelfID)
	if lv, ok := r.st.levels[k]; ok {
		c := *lv
		return &c, nil
	}
	lv := &entity.StockLevel{
		ID: uuid.New().String(), ProductID: productID, WarehouseID: warehouseID,
		ShelfID: shelfID, Quantity: decimal.Zero,
	}
	r.st.levels[k] = lv
	c := *lv
	return &c, nil
}
func (r *memLevelRepo) Upsert(level *entity.StockLevel) error {
	c := *level
	r.st.levels[lvKey(level.ProductID, level.WarehouseID, level.ShelfID)] = &c
	return nil
}
func (r *memLevelRepo) ListView(limit, offset int) ([]*repository.StockLevelView, error) {
	return nil, nil
}

type memMovementRepo struct{ st *memState }

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	c := *m
	r.st.ledger = append(r.st.ledger, &c)
	return nil
}
func (r *memMovementRepo) GetByID(id string) (*entity.StockMovement, error) { return nil, nil }
func (r *memMovementRepo) List(f repository.MovementFilter) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (r *memMovementRepo) ListView(f repository.MovementFilter) ([]*repository.StockMovementView, error) {
	return nil, nil
}

// memTxRunner implementa purchases.TxRunner con commit/rollback sobre un clon.
// snapshot permite arrancar la próxima tx desde una foto vieja del estado
// (READ COMMITTED: la tx no ve lo que otra confirmó después de su snapshot).
type memTxRunner struct {
	st       **memState
	snapshot *memState
}

func (r *memTxRunner) RunPurchase(_ context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	movRepo repository.StockMovementRepository,
	levelRepo repository.StockLevelRepository,
) error) error {
	base := *r.st
	if r.snapshot != nil {
		base = r.snapshot
		r.snapshot = nil
	}
	work := base.clone()
	if err := fn(&memPurchaseRepo{st: work, head: r.st}, &memMovementRepo{st: work}, &memLevelRepo{st: work}); err != nil {
		return err // rollback: el clon se descarta
	}
	*r.st = work
	return nil
}

// Repos mínimos para la validación del motor.

type memWarehouseRepo struct{ byID map[string]*entity.Warehouse }

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error { return nil }
func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) { return r.byID[id], nil }
func (r *memWarehouseRepo) Update(w *entity.Warehouse) error { return nil }
func (r *memWarehouseRepo) List(bool, int, int) ([]*entity.Warehouse, error) { return nil, nil }

type memShelfRepo struct{ byID map[string]*entity.Shelf }

func (r *memShelfRepo) Create(s *entity.Shelf) error { return nil }
func (r *memShelfRepo) GetByID(id string) (*entity.Shelf, error) { return r.byID[id], nil }
func (r *memShelfRepo) ListByWarehouse(string) ([]*entity.Shelf, error) { return nil, nil }
func (r *memShelfRepo) Delete(id string) error { return nil }

type memUserRepo struct{ byID map[string]*entity.User }

func (r *memUserRepo) Create(u *entity.User) error { return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) { return r.byID[id], nil }
func (r *memUserRepo) GetByUsername(string) (*entity.User, error) { return nil, nil }
func (r *memUserRepo) Update(u *entity.User) error { return nil }
func (r *memUserRepo) List(int, int) ([]*entity.User, error) { return nil, nil }

type memSupplierRepo struct{ byID map[string]*entity.Supplier }

func (r *memSupplierRepo) Create(s *entity.Supplier) error { return nil }
func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) { return r.byID[id], nil }
func (r *memSupplierRepo) Update(s *entity.Supplier) error { return nil }
func (r *memSupplierRepo) List(bool, int, int) ([]*entity.Supplier, error) { return nil, nil }

type memProductRepo struct{ byID map[string]*entity.Product }

func (r *memProductRepo) Create(p *entity.Product) error { return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) { return r.byID[id], nil }
func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Update(p *entity.Product) error { return nil }
func (r *memProductRepo) List(bool, int, int) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Search(string, int, int) ([]*entity.Product, error) { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	whID    = "wh-1"
	supID   = "sup-1"
	prodA   = "prod-a"
	prodB   = "prod-b"
	adminID = "user-admin"
)

type fixture struct {
	uc     *purchases.PurchaseUseCase
	st     **memState // el commit de la tx reasigna el estado
	runner *memTxRunner
	whRepo *memWarehouseRepo
}

// state devuelve el estado vigente tras el último commit.
func (f *fixture) state() *memState { return *f.st }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	state := newMemState()
	runner := &memTxRunner{st: &state}

	warehouses := &memWarehouseRepo{byID: map[string]*entity.Warehouse{
		whID: {ID: whID, Name: "Bodega Central", IsActive: true},
	}}
	shelves := &memShelfRepo{byID: map[string]*entity.Shelf{}}
	users := &memUserRepo{byID: map[string]*entity.User{
		adminID: {ID: adminID, Username: "admin", Role: entity.RoleAdmin, IsActive: true},
	}}
	suppliers := &memSupplierRepo{byID: map[string]*entity.Supplier{
		supID: {ID: supID, Name: "Proveedor Uno", IsActive: true},
	}}
	products := &memProductRepo{byID: map[string]*entity.Product{
		prodA: {ID: prodA, SKU: "SKU-A", Name: "Producto A", IsActive: true},
		prodB: {ID: prodB, SKU: "SKU-B", Name: "Producto B", IsActive: true},
	}}

	// El motor real por debajo: la recepción debe pasar por su validación.
	engine := stock.NewApplyMovementUseCase(nil, warehouses, shelves, users)

	// El repo de compras fuera de transacción escribe directo al estado vivo.
	live := &livePurchaseRepo{st: &state}
	uc := purchases.NewPurchaseUseCase(runner, engine, live, suppliers, warehouses, shelves, products)
	return &fixture{uc: uc, st: &state, runner: runner, whRepo: warehouses}
}

// livePurchaseRepo delega en el estado actual (se reasigna tras cada commit).
type livePurchaseRepo struct{ st **memState }

func (r *livePurchaseRepo) repo() *memPurchaseRepo { return &memPurchaseRepo{st: *r.st} }
func (r *livePurchaseRepo) Create(p *entity.Purchase) error { return r.repo().Create(p) }
func (r *livePurchaseRepo) GetByID(id string) (*entity.Purchase, error) { return r.repo().GetByID(id) }
func (r *livePurchaseRepo) GetByIDForUpdate(id string) (*entity.Purchase, error) {
	return r.repo().GetByIDForUpdate(id)
}
func (r *livePurchaseRepo) Update(p *entity.Purchase) error { return r.repo().Update(p) }
func (r *livePurchaseRepo) List(l, o int) ([]*entity.Purchase, error) { return r.repo().List(l, o) }
func (r *livePurchaseRepo) GetItem(pid, prid string) (*entity.PurchaseItem, error) {
	return r.repo().GetItem(pid, prid)
}
func (r *livePurchaseRepo) CreateItem(it *entity.PurchaseItem) error { return r.repo().CreateItem(it) }
func (r *livePurchaseRepo) UpdateItemQuantity(it *entity.PurchaseItem) error {
	return r.repo().UpdateItemQuantity(it)
}
func (r *livePurchaseRepo) DeleteItem(pid, iid string) error { return r.repo().DeleteItem(pid, iid) }
func (r *livePurchaseRepo) ListItems(pid string) ([]*entity.PurchaseItem, error) {
	return r.repo().ListItems(pid)
}

func (f *fixture) draft(t *testing.T) *entity.Purchase {
	t.Helper()
	p, err := f.uc.Create(purchases.CreateInput{
		SupplierID: supID, WarehouseID: whID, CreatedBy: adminID,
	})
	require.NoError(t, err)
	return p
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_AcumulaEnLaMismaLinea(t *testing.T) {
	f := newFixture(t)
	p := f.draft(t)

	require.NoError(t, f.uc.AddItem(p.ID, prodA, d("3")))
	require.NoError(t, f.uc.AddItem(p.ID, prodA, d("2")))

	list := f.state().items[p.ID]
	require.Len(t, list, 1, "el mismo producto no duplica línea")
	assert.True(t, list[0].Quantity.Equal(d("5")), "la cantidad se acumula")
}

func TestAddItem_CantidadInvalida(t *testing.T) {
	f := newFixture(t)
	p := f.draft(t)
	err := f.uc.AddItem(p.ID, prodA, d("0"))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestReceive_PosteaUnINPorItem(t *testing.T) {
	f := newFixture(t)
	p := f.draft(t)
	require.NoError(t, f.uc.AddItem(p.ID, prodA, d("10")))
	require.NoError(t, f.uc.AddItem(p.ID, prodB, d("4")))

	require.NoError(t, f.uc.Receive(context.Background(), p.ID, adminID))

	assert.Len(t, f.state().ledger, 2, "un movimiento IN por ítem")
	for _, m := range f.state().ledger {
		assert.Equal(t, entity.MovementKindIN, m.Kind)
		assert.Equal(t, entity.ReferencePurchase, m.ReferenceType)
		assert.Equal(t, "purchase:"+p.ID, m.Note)
	}
	assert.True(t, f.state().levels[lvKey(prodA, whID, nil)].Quantity.Equal(d("10")))
	assert.True(t, f.state().levels[lvKey(prodB, whID, nil)].Quantity.Equal(d("4")))

	got := f.state().purchases[p.ID]
	assert.Equal(t, entity.PurchaseStatusReceived, got.Status)
	require.NotNil(t, got.ReceivedBy)
	assert.Equal(t, adminID, *got.ReceivedBy)
	require.NotNil(t, got.ReceivedAt)
	assert.WithinDuration(t, time.Now().UTC(), *got.ReceivedAt, 5*time.Second)
}

func TestReceive_SinItems(t *testing.T) {
	f := newFixture(t)
	p := f.draft(t)
	err := f.uc.Receive(context.Background(), p.ID, adminID)
	assert.ErrorIs(t, err, domain.ErrPurchaseEmpty)
	assert.Equal(t, entity.PurchaseStatusDraft, f.state().purchases[p.ID].Status)
}

func TestReceive_DobleRecepcionRechazada(t *testing.T) {
	f := newFixture(t)
	p := f.draft(t)
	require.NoError(t, f.uc.AddItem(p.ID, prodA, d("10")))
	require.NoError(t, f.uc.Receive(context.Background(), p.ID, adminID))

	err := f.uc.Receive(context.Background(), p.ID, adminID)
	assert.ErrorIs(t, err, domain.ErrPurchaseReceived,
		"el gate DRAFT→RECEIVED dentro de la tx impide duplicar entradas")
	assert.Len(t, f.state().ledger, 1)
}

func TestReceive_DobleSubmitConcurrente(t *testing.T) {
	f := newFixture(t)
	p := f.draft(t)
	require.NoError(t, f.uc.AddItem(p.ID, prodA, d("10")))

	// Snapshot de la segunda transacción tomado ANTES de que la primera
	// confirme: un SELECT plano sobre esa foto vería DRAFT y volvería a
	// postear las líneas. El lock de fila relee la versión confirmada.
	stale := f.state().clone()

	require.NoError(t, f.uc.Receive(context.Background(), p.ID, adminID))

	f.runner.snapshot = stale
	err := f.uc.Receive(context.Background(), p.ID, adminID)
	assert.ErrorIs(t, err, domain.ErrPurchaseReceived,
		"la recepción concurrente con foto vieja debe cortar en el gate")

	assert.Len(t, f.state().ledger, 1, "una sola tanda de movimientos IN")
	assert.True(t, f.state().levels[lvKey(prodA, whID, nil)].Quantity.Equal(d("10")),
		"el saldo no se duplica por el doble submit")
}

func TestReceive_TodoONada(t *testing.T) {
	f := newFixture(t)
	p := f.draft(t)
	require.NoError(t, f.uc.AddItem(p.ID, prodA, d("10")))
	require.NoError(t, f.uc.AddItem(p.ID, prodB, d("4")))

	// La bodega se desactiva entre el borrador y la recepción: el motor
	// rechaza cada línea y la primera falla aborta la transacción entera.
	f.whRepo.byID[whID].IsActive = false

	err := f.uc.Receive(context.Background(), p.ID, adminID)
	require.ErrorIs(t, err, domain.ErrWarehouseUnavailable)

	assert.Empty(t, f.state().ledger, "ninguna línea entra si una falla")
	assert.Empty(t, f.state().levels)
	assert.Equal(t, entity.PurchaseStatusDraft, f.state().purchases[p.ID].Status,
		"la compra sigue en DRAFT tras el rollback")
}
