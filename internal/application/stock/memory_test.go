package stock_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-wms/internal/application/stock"
	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el motor. memTxRunner serializa las transacciones con
// un mutex: comportamiento observable equivalente al bloqueo de fila por llave
// de PostgreSQL. Las escrituras se acumulan en la "tx" y solo se publican al
// store si el callback termina sin error (commit/rollback).
// ──────────────────────────────────────────────────────────────────────────────

func levelKey(productID, warehouseID string, shelfID *string) string {
	k := productID + "|" + warehouseID + "|"
	if shelfID != nil {
		k += *shelfID
	}
	return k
}

type memStore struct {
	mu     sync.Mutex
	levels map[string]*entity.StockLevel
	ledger []*entity.StockMovement
}

func newMemStore() *memStore {
	return &memStore{levels: map[string]*entity.StockLevel{}}
}

type memTx struct {
	store  *memStore
	levels map[string]*entity.StockLevel
	movs   []*entity.StockMovement
}

func (tx *memTx) commit() {
	for k, lv := range tx.levels {
		tx.store.levels[k] = lv
	}
	tx.store.ledger = append(tx.store.ledger, tx.movs...)
}

type memTxRunner struct{ store *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	levelRepo repository.StockLevelRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	tx := &memTx{store: r.store, levels: map[string]*entity.StockLevel{}}
	if err := fn(&memMovementRepo{tx: tx}, &memLevelRepo{tx: tx}); err != nil {
		return err // rollback: lo acumulado en tx se descarta
	}
	tx.commit()
	return nil
}

var _ stock.TxRunner = (*memTxRunner)(nil)

// ── StockLevelRepository ──────────────────────────────────────────────────────

type memLevelRepo struct{ tx *memTx }

func (r *memLevelRepo) Get(productID, warehouseID string, shelfID *string) (*entity.StockLevel, error) {
	k := levelKey(productID, warehouseID, shelfID)
	if lv, ok := r.tx.levels[k]; ok {
		cp := *lv
		return &cp, nil
	}
	if lv, ok := r.tx.store.levels[k]; ok {
		cp := *lv
		return &cp, nil
	}
	return &entity.StockLevel{ProductID: productID, WarehouseID: warehouseID, ShelfID: shelfID, Quantity: decimal.Zero}, nil
}

func (r *memLevelRepo) GetForUpdate(productID, warehouseID string, shelfID *string) (*entity.StockLevel, error) {
	k := levelKey(productID, warehouseID, shelfID)
	if lv, ok := r.tx.levels[k]; ok {
		cp := *lv
		return &cp, nil
	}
	if lv, ok := r.tx.store.levels[k]; ok {
		cp := *lv
		return &cp, nil
	}
	// Materializa en cero dentro de la tx, igual que el adaptador de PostgreSQL.
	lv := &entity.StockLevel{
		ID:          uuid.New().String(),
		ProductID:   productID,
		WarehouseID: warehouseID,
		ShelfID:     shelfID,
		Quantity:    decimal.Zero,
		UpdatedAt:   time.Now().UTC(),
	}
	r.tx.levels[k] = lv
	cp := *lv
	return &cp, nil
}

func (r *memLevelRepo) Upsert(level *entity.StockLevel) error {
	cp := *level
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	r.tx.levels[levelKey(level.ProductID, level.WarehouseID, level.ShelfID)] = &cp
	return nil
}

func (r *memLevelRepo) ListView(limit, offset int) ([]*repository.StockLevelView, error) {
	return nil, nil
}

// ── StockMovementRepository ───────────────────────────────────────────────────

type memMovementRepo struct{ tx *memTx }

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.tx.movs = append(r.tx.movs, &cp)
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.tx.store.ledger {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	out := []*entity.StockMovement{}
	for _, m := range r.tx.store.ledger {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memMovementRepo) ListView(filter repository.MovementFilter) ([]*repository.StockMovementView, error) {
	return nil, nil
}

// ── Repos de validación (bodegas, estantes, usuarios) ────────────────────────

type memWarehouseRepo struct{ byID map[string]*entity.Warehouse }

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error { r.byID[w.ID] = w; return nil }
func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.byID[id], nil
}
func (r *memWarehouseRepo) Update(w *entity.Warehouse) error { r.byID[w.ID] = w; return nil }
func (r *memWarehouseRepo) List(onlyActive bool, limit, offset int) ([]*entity.Warehouse, error) {
	return nil, nil
}

type memShelfRepo struct{ byID map[string]*entity.Shelf }

func (r *memShelfRepo) Create(s *entity.Shelf) error { r.byID[s.ID] = s; return nil }
func (r *memShelfRepo) GetByID(id string) (*entity.Shelf, error) {
	return r.byID[id], nil
}
func (r *memShelfRepo) ListByWarehouse(warehouseID string) ([]*entity.Shelf, error) {
	return nil, nil
}
func (r *memShelfRepo) Delete(id string) error { delete(r.byID, id); return nil }

type memUserRepo struct{ byID map[string]*entity.User }

func (r *memUserRepo) Create(u *entity.User) error { r.byID[u.ID] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	return r.byID[id], nil
}
func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) Update(u *entity.User) error { r.byID[u.ID] = u; return nil }
func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
