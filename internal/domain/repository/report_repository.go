package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyMovementCount cantidad de movimientos por día.
type DailyMovementCount struct {
	Day   time.Time
	Count int
}

// ProductMovementTotal total de cantidad movida por producto en una ventana.
type ProductMovementTotal struct {
	ProductID   string
	ProductName string
	SKU         string
	Total       decimal.Decimal
}

// LowStockRow producto cuyo stock total quedó por debajo de su mínimo.
type LowStockRow struct {
	ProductID     string
	ProductName   string
	SKU           string
	MinStockLevel decimal.Decimal
	Quantity      decimal.Decimal
}

// DashboardSummary indicadores globales del tablero de administración.
type DashboardSummary struct {
	TotalProducts    int
	TotalWarehouses  int
	TodayIn          int
	TodayOut         int
	CriticalProducts int
}

// ReportRepository consultas de agregación de solo lectura sobre el libro de
// movimientos y los saldos. Sin reglas de negocio.
type ReportRepository interface {
	DailyMovementCounts(since time.Time) ([]*DailyMovementCount, error)
	TopProducts(kind string, since time.Time, limit int) ([]*ProductMovementTotal, error)
	LowStock() ([]*LowStockRow, error)
	Dashboard() (*DashboardSummary, error)
}
