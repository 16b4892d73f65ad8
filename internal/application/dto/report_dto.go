package dto

import "github.com/shopspring/decimal"

// DailyCountDTO conteo de movimientos de un día.
type DailyCountDTO struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// ProductTotalDTO total movido por producto en la ventana del reporte.
type ProductTotalDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Total       decimal.Decimal `json:"total"`
}

// MovementReportResponse reporte agregado del libro de movimientos.
type MovementReportResponse struct {
	From   string            `json:"from"`
	To     string            `json:"to"`
	Days   int               `json:"days"`
	Daily  []DailyCountDTO   `json:"daily"`
	TopIn  []ProductTotalDTO `json:"top_in"`
	TopOut []ProductTotalDTO `json:"top_out"`
}

// DashboardResponse indicadores del tablero de administración.
type DashboardResponse struct {
	TotalProducts    int `json:"total_products"`
	TotalWarehouses  int `json:"total_warehouses"`
	TodayIn          int `json:"today_in"`
	TodayOut         int `json:"today_out"`
	CriticalProducts int `json:"critical_products"`
}

// LowStockDTO producto bajo su stock mínimo.
type LowStockDTO struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	SKU           string          `json:"sku"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	Quantity      decimal.Decimal `json:"quantity"`
}
