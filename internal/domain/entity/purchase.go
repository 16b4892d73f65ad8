package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una compra.
const (
	PurchaseStatusDraft    = "DRAFT"
	PurchaseStatusReceived = "RECEIVED"
)

// Purchase representa una orden de compra a un proveedor. Mientras está en
// DRAFT se editan sus ítems; al recibirla se postea un movimiento IN por ítem
// y pasa a RECEIVED (irreversible).
type Purchase struct {
	ID          string
	SupplierID  string
	WarehouseID string
	ShelfID     *string
	Status      string // DRAFT, RECEIVED
	Note        string
	CreatedBy   string
	CreatedAt   time.Time
	ReceivedBy  *string
	ReceivedAt  *time.Time
}

// PurchaseItem es una línea de compra. Único por (purchase, product):
// agregar el mismo producto acumula cantidad en la línea existente.
type PurchaseItem struct {
	ID         string
	PurchaseID string
	ProductID  string
	Quantity   decimal.Decimal
}
