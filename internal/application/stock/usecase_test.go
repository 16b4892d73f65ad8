package stock_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-wms/internal/application/stock"
	"github.com/tu-usuario/almacen-wms/internal/domain"
	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	productID    = "prod-1"
	warehouseID  = "wh-1"
	warehouseBID = "wh-2"
	inactiveWhID = "wh-off"
	shelfA1ID    = "shelf-a1"
	shelfForeign = "shelf-b"
	adminID      = "user-admin"
	bodegueroID  = "user-bodeguero"
)

type fixture struct {
	engine *stock.ApplyMovementUseCase
	store  *memStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newMemStore()
	warehouses := &memWarehouseRepo{byID: map[string]*entity.Warehouse{
		warehouseID:  {ID: warehouseID, Name: "Bodega Central", IsActive: true},
		warehouseBID: {ID: warehouseBID, Name: "Bodega Despachos", IsActive: true},
		inactiveWhID: {ID: inactiveWhID, Name: "Bodega Cerrada", IsActive: false},
	}}
	shelves := &memShelfRepo{byID: map[string]*entity.Shelf{
		shelfA1ID:    {ID: shelfA1ID, WarehouseID: warehouseID, Code: "A1"},
		shelfForeign: {ID: shelfForeign, WarehouseID: warehouseBID, Code: "R-01"},
	}}
	users := &memUserRepo{byID: map[string]*entity.User{
		adminID:     {ID: adminID, Username: "admin", Role: entity.RoleAdmin, IsActive: true},
		bodegueroID: {ID: bodegueroID, Username: "bodeguero", Role: entity.RoleBodeguero, IsActive: true},
	}}
	engine := stock.NewApplyMovementUseCase(&memTxRunner{store: store}, warehouses, shelves, users)
	return &fixture{engine: engine, store: store}
}

func qty(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func (f *fixture) apply(t *testing.T, in stock.MovementInput) *entity.StockMovement {
	t.Helper()
	m, err := f.engine.Apply(context.Background(), in)
	require.NoError(t, err, "el movimiento debía aplicarse sin error")
	require.NotNil(t, m)
	return m
}

func (f *fixture) balance(productID, warehouseID string, shelfID *string) decimal.Decimal {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	lv, ok := f.store.levels[levelKey(productID, warehouseID, shelfID)]
	if !ok {
		return decimal.Zero
	}
	return lv.Quantity
}

func entradaIN(qtyStr string) stock.MovementInput {
	return stock.MovementInput{
		ProductID:     productID,
		WarehouseID:   warehouseID,
		Kind:          entity.MovementKindIN,
		Quantity:      qty(qtyStr),
		ReferenceType: entity.ReferencePurchase,
		CreatedBy:     bodegueroID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo (IN → OUT → ADJUST → OUT rechazado)
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_EscenarioCompleto(t *testing.T) {
	f := newFixture(t)

	// IN 50 sobre llave nueva → saldo 50, libro {IN, 50}
	m1 := f.apply(t, stock.MovementInput{
		ProductID: productID, WarehouseID: warehouseID,
		Kind: "IN", Quantity: qty("50"), ReferenceType: "purchase", CreatedBy: bodegueroID,
	})
	assert.Equal(t, entity.MovementKindIN, m1.Kind)
	assert.True(t, m1.Quantity.Equal(qty("50")), "el libro debe registrar |cantidad|")
	assert.True(t, f.balance(productID, warehouseID, nil).Equal(qty("50")))

	// OUT 20 → saldo 30, libro {OUT, 20}
	m2 := f.apply(t, stock.MovementInput{
		ProductID: productID, WarehouseID: warehouseID,
		Kind: "OUT", Quantity: qty("20"), ReferenceType: "sale", CreatedBy: bodegueroID,
	})
	assert.True(t, m2.Quantity.Equal(qty("20")))
	assert.True(t, f.balance(productID, warehouseID, nil).Equal(qty("30")))

	// ADJUST a 100 por admin → saldo 100, libro {ADJUST, +70}
	m3 := f.apply(t, stock.MovementInput{
		ProductID: productID, WarehouseID: warehouseID,
		Kind: "ADJUST", Quantity: qty("100"), ReferenceType: "adjustment",
		Reason: "recount", CreatedBy: adminID,
	})
	assert.True(t, m3.Quantity.Equal(qty("70")), "ADJUST registra el delta firmado, no el objetivo")
	require.NotNil(t, m3.Reason)
	assert.Equal(t, "recount", *m3.Reason)
	assert.True(t, f.balance(productID, warehouseID, nil).Equal(qty("100")))

	// OUT 150 → rechazado por stock negativo; saldo y libro quedan intactos
	_, err := f.engine.Apply(context.Background(), stock.MovementInput{
		ProductID: productID, WarehouseID: warehouseID,
		Kind: "OUT", Quantity: qty("150"), ReferenceType: "sale", CreatedBy: bodegueroID,
	})
	require.ErrorIs(t, err, domain.ErrNegativeStock)
	assert.True(t, f.balance(productID, warehouseID, nil).Equal(qty("100")),
		"un rechazo no debe tocar el saldo")
	assert.Len(t, f.store.ledger, 3, "un rechazo no debe dejar entradas en el libro")
}

// ──────────────────────────────────────────────────────────────────────────────
// Pipeline de validación
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_TipoInvalido(t *testing.T) {
	f := newFixture(t)
	for _, kind := range []string{"", "TRANSFER", "in-out", "ENTRADA"} {
		in := entradaIN("5")
		in.Kind = kind
		_, err := f.engine.Apply(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidKind, "tipo %q debe rechazarse", kind)
	}
}

func TestApply_TipoSeNormaliza(t *testing.T) {
	f := newFixture(t)
	in := entradaIN("5")
	in.Kind = "  in \n"
	m := f.apply(t, in)
	assert.Equal(t, entity.MovementKindIN, m.Kind, "el tipo se normaliza con mayúsculas y trim")
}

func TestApply_CantidadInvalida(t *testing.T) {
	f := newFixture(t)

	for _, kind := range []string{"IN", "OUT"} {
		for _, q := range []string{"0", "-5"} {
			_, err := f.engine.Apply(context.Background(), stock.MovementInput{
				ProductID: productID, WarehouseID: warehouseID,
				Kind: kind, Quantity: qty(q), CreatedBy: bodegueroID,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "%s con cantidad %s", kind, q)
		}
	}

	// ADJUST: el objetivo no puede ser negativo (cero sí es válido)
	_, err := f.engine.Apply(context.Background(), stock.MovementInput{
		ProductID: productID, WarehouseID: warehouseID,
		Kind: "ADJUST", Quantity: qty("-1"), Reason: "x", CreatedBy: adminID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestApply_AdjustSinMotivo(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.Apply(context.Background(), stock.MovementInput{
		ProductID: productID, WarehouseID: warehouseID,
		Kind: "ADJUST", Quantity: qty("10"), Reason: "   ", CreatedBy: adminID,
	})
	assert.ErrorIs(t, err, domain.ErrMissingReason, "un motivo en blanco no cuenta")
}

func TestApply_AdjustRequiereAdmin(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.Apply(context.Background(), stock.MovementInput{
		ProductID: productID, WarehouseID: warehouseID,
		Kind: "ADJUST", Quantity: qty("10"), Reason: "recount", CreatedBy: bodegueroID,
	})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied,
		"ADJUST de un no-admin se rechaza aunque el resto del request sea válido")
	assert.Empty(t, f.store.ledger)
}

func TestApply_UsuarioDesconocido(t *testing.T) {
	f := newFixture(t)
	in := entradaIN("5")
	in.CreatedBy = "nadie"
	_, err := f.engine.Apply(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrUnknownUser)
}

func TestApply_BodegaInactivaONoExiste(t *testing.T) {
	f := newFixture(t)

	in := entradaIN("5")
	in.WarehouseID = inactiveWhID
	_, err := f.engine.Apply(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrWarehouseUnavailable, "bodega inactiva")

	in = entradaIN("5")
	in.WarehouseID = "wh-fantasma"
	_, err = f.engine.Apply(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrWarehouseUnavailable, "bodega inexistente")
}

func TestApply_EstanteNoExiste(t *testing.T) {
	f := newFixture(t)
	in := entradaIN("5")
	ghost := "shelf-fantasma"
	in.ShelfID = &ghost
	_, err := f.engine.Apply(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrShelfNotFound)
}

func TestApply_EstanteDeOtraBodega(t *testing.T) {
	f := newFixture(t)
	in := entradaIN("5")
	foreign := shelfForeign // existe, pero pertenece a warehouseBID
	in.ShelfID = &foreign
	_, err := f.engine.Apply(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrShelfWarehouseMismatch,
		"un estante válido de otra bodega no puede usarse aquí")
}

func TestApply_GanaLaPrimeraReglaQueFalla(t *testing.T) {
	f := newFixture(t)
	// Cantidad negativa + estante ajeno + usuario no admin: debe ganar la
	// regla de cantidad (va antes en el pipeline).
	foreign := shelfForeign
	_, err := f.engine.Apply(context.Background(), stock.MovementInput{
		ProductID: productID, WarehouseID: warehouseID, ShelfID: &foreign,
		Kind: "ADJUST", Quantity: qty("-3"), CreatedBy: bodegueroID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Semántica de llaves y de ADJUST
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_EstanteNuloEsLlavePropia(t *testing.T) {
	f := newFixture(t)

	shelf := shelfA1ID
	in := entradaIN("10")
	in.ShelfID = &shelf
	f.apply(t, in)

	f.apply(t, entradaIN("7")) // mismo producto y bodega, sin estante

	assert.True(t, f.balance(productID, warehouseID, &shelf).Equal(qty("10")))
	assert.True(t, f.balance(productID, warehouseID, nil).Equal(qty("7")),
		"el saldo sin estante es una llave distinta, no un comodín")
}

func TestApply_AdjustCorrecto(t *testing.T) {
	f := newFixture(t)
	f.apply(t, entradaIN("40"))

	// Para todo objetivo t >= 0: libro = t - actual, saldo final = t.
	current := qty("40")
	for _, target := range []string{"100", "12.5", "0", "0"} {
		m := f.apply(t, stock.MovementInput{
			ProductID: productID, WarehouseID: warehouseID,
			Kind: "ADJUST", Quantity: qty(target), ReferenceType: "adjustment",
			Reason: "recuento físico", CreatedBy: adminID,
		})
		want := qty(target).Sub(current)
		assert.True(t, m.Quantity.Equal(want),
			"libro debe ser t-c: objetivo %s desde %s, esperaba %s, fue %s",
			target, current, want, m.Quantity)
		current = qty(target)
		assert.True(t, f.balance(productID, warehouseID, nil).Equal(current))
	}
}

func TestApply_Conservacion(t *testing.T) {
	f := newFixture(t)

	f.apply(t, entradaIN("30"))
	out := entradaIN("12")
	out.Kind = "OUT"
	f.apply(t, out)
	f.apply(t, stock.MovementInput{
		ProductID: productID, WarehouseID: warehouseID,
		Kind: "ADJUST", Quantity: qty("25"), Reason: "recount", CreatedBy: adminID,
	})
	f.apply(t, entradaIN("5.75"))

	// El saldo debe ser exactamente la suma de deltas firmados del libro.
	sum := decimal.Zero
	for _, m := range f.store.ledger {
		switch m.Kind {
		case entity.MovementKindIN:
			sum = sum.Add(m.Quantity)
		case entity.MovementKindOUT:
			sum = sum.Sub(m.Quantity)
		case entity.MovementKindADJUST:
			sum = sum.Add(m.Quantity) // ya viene firmado
		}
	}
	assert.True(t, f.balance(productID, warehouseID, nil).Equal(sum),
		"saldo %s != pliegue del libro %s", f.balance(productID, warehouseID, nil), sum)
}

func TestApply_RechazoNoDejaEscrituraParcial(t *testing.T) {
	f := newFixture(t)
	out := entradaIN("10")
	out.Kind = "OUT"
	_, err := f.engine.Apply(context.Background(), out)
	require.ErrorIs(t, err, domain.ErrNegativeStock)

	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	assert.Empty(t, f.store.ledger, "rollback: el libro queda vacío")
	assert.Empty(t, f.store.levels, "rollback: ni siquiera la fila en cero se publica")
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_ConcurrenciaSinUpdatesPerdidos(t *testing.T) {
	f := newFixture(t)

	const n = 25
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := f.engine.Apply(context.Background(), entradaIN("4"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.True(t, f.balance(productID, warehouseID, nil).Equal(qty("100")),
		"N entradas concurrentes de q deben dejar exactamente N*q")
	assert.Len(t, f.store.ledger, n)
}
