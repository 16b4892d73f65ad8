package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del almacén.
// El stock no vive aquí: se lleva por (producto, bodega, estante) en StockLevel.
type Product struct {
	ID            string
	SKU           string  // único
	Name          string
	Barcode       *string // único si está presente
	CategoryID    *string
	UnitID        string
	MinStockLevel decimal.Decimal // umbral para el reporte de stock bajo
	Description   string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
