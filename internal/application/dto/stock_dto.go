package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/stock/movements.
// Para IN/OUT quantity es la magnitud; para ADJUST es el saldo objetivo.
type RegisterMovementRequest struct {
	ProductID     string          `json:"product_id"`
	WarehouseID   string          `json:"warehouse_id"`
	ShelfID       *string         `json:"shelf_id,omitempty"`
	Kind          string          `json:"kind"`
	Quantity      decimal.Decimal `json:"quantity"`
	ReferenceType string          `json:"reference_type,omitempty"`
	Reason        string          `json:"reason,omitempty"`
	Note          string          `json:"note,omitempty"`
}

// MovementResponse un asiento del libro de movimientos.
type MovementResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name,omitempty"`
	SKU           string          `json:"sku,omitempty"`
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name,omitempty"`
	ShelfID       *string         `json:"shelf_id,omitempty"`
	ShelfCode     *string         `json:"shelf_code,omitempty"`
	Kind          string          `json:"kind"`
	Quantity      decimal.Decimal `json:"quantity"`
	ReferenceType string          `json:"reference_type"`
	Reason        *string         `json:"reason,omitempty"`
	Note          string          `json:"note,omitempty"`
	CreatedBy     string          `json:"created_by"`
	CreatedByName string          `json:"created_by_name,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// StockLevelResponse saldo vigente de una llave (producto, bodega, estante).
type StockLevelResponse struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name,omitempty"`
	SKU           string          `json:"sku,omitempty"`
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name,omitempty"`
	ShelfID       *string         `json:"shelf_id,omitempty"`
	ShelfCode     *string         `json:"shelf_code,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// MovementListQuery filtros para GET /api/stock/movements.
type MovementListQuery struct {
	ProductID   string `query:"product_id"`
	WarehouseID string `query:"warehouse_id"`
	Kind        string `query:"kind"`
	From        string `query:"from"` // YYYY-MM-DD
	To          string `query:"to"`   // YYYY-MM-DD
	Limit       int    `query:"limit"`
	Offset      int    `query:"offset"`
}
