package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock. Conjunto cerrado: el signo del delta y la
// autorización dependen del tipo, así que el motor lo valida siempre.
const (
	MovementKindIN     = "IN"     // entrada, delta = +|cantidad|
	MovementKindOUT    = "OUT"    // salida, delta = -|cantidad|
	MovementKindADJUST = "ADJUST" // la cantidad es el saldo objetivo; delta = objetivo - actual
)

// Tipos de referencia (clasificación abierta, solo para reporte/visualización).
const (
	ReferencePurchase   = "purchase"
	ReferenceSale       = "sale"
	ReferenceTransfer   = "transfer"
	ReferenceAdjustment = "adjustment"
)

// StockMovement es una entrada del libro de movimientos: inmutable una vez
// creada. El saldo (StockLevel) es el pliegue del libro, no una fuente de
// verdad independiente. Para IN/OUT Quantity guarda |cantidad|; para ADJUST
// guarda el delta firmado realmente aplicado (puede ser negativo o cero).
type StockMovement struct {
	ID            string
	ProductID     string
	WarehouseID   string
	ShelfID       *string
	Kind          string // IN, OUT, ADJUST
	Quantity      decimal.Decimal
	ReferenceType string  // purchase, sale, transfer, adjustment
	Reason        *string // obligatorio en ADJUST
	Note          string
	CreatedBy     string
	CreatedAt     time.Time
}
