package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest body para abrir una compra en borrador.
type CreatePurchaseRequest struct {
	SupplierID  string  `json:"supplier_id" validate:"required,uuid"`
	WarehouseID string  `json:"warehouse_id" validate:"required,uuid"`
	ShelfID     *string `json:"shelf_id,omitempty"`
	Note        string  `json:"note,omitempty"`
}

// AddPurchaseItemRequest body para agregar un ítem al borrador.
type AddPurchaseItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// PurchaseItemResponse un ítem de la compra.
type PurchaseItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// PurchaseResponse salida de una compra, con ítems opcionales.
type PurchaseResponse struct {
	ID          string                 `json:"id"`
	SupplierID  string                 `json:"supplier_id"`
	WarehouseID string                 `json:"warehouse_id"`
	ShelfID     *string                `json:"shelf_id,omitempty"`
	Status      string                 `json:"status"`
	Note        string                 `json:"note,omitempty"`
	CreatedBy   string                 `json:"created_by"`
	CreatedAt   time.Time              `json:"created_at"`
	ReceivedBy  *string                `json:"received_by,omitempty"`
	ReceivedAt  *time.Time             `json:"received_at,omitempty"`
	Items       []PurchaseItemResponse `json:"items,omitempty"`
}
