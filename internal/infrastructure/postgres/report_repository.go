package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación de solo lectura sobre el libro de
// movimientos y los saldos.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// DailyMovementCounts cuenta los asientos por día desde una fecha.
func (r *ReportRepo) DailyMovementCounts(since time.Time) ([]*repository.DailyMovementCount, error) {
	const query = `
	SELECT date_trunc('day', created_at) AS day, COUNT(*) AS total
	FROM stock_movements
	WHERE created_at >= $1
	GROUP BY day
	ORDER BY day`
	rows, err := r.q.Query(context.Background(), query, since)
	if err != nil {
		return nil, fmt.Errorf("reports.DailyMovementCounts: %w", err)
	}
	defer rows.Close()

	var out []*repository.DailyMovementCount
	for rows.Next() {
		var c repository.DailyMovementCount
		if err := rows.Scan(&c.Day, &c.Count); err != nil {
			return nil, fmt.Errorf("scan daily count: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// TopProducts suma la cantidad movida por producto para un tipo de movimiento
// desde una fecha, de mayor a menor.
func (r *ReportRepo) TopProducts(kind string, since time.Time, limit int) ([]*repository.ProductMovementTotal, error) {
	const query = `
	SELECT m.product_id, p.name, p.sku, SUM(ABS(m.quantity)) AS total
	FROM stock_movements m
	JOIN products p ON p.id = m.product_id
	WHERE m.kind = $1 AND m.created_at >= $2
	GROUP BY m.product_id, p.name, p.sku
	ORDER BY total DESC
	LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, kind, since, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.TopProducts: %w", err)
	}
	defer rows.Close()

	var out []*repository.ProductMovementTotal
	for rows.Next() {
		var t repository.ProductMovementTotal
		if err := rows.Scan(&t.ProductID, &t.ProductName, &t.SKU, &t.Total); err != nil {
			return nil, fmt.Errorf("scan product total: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// Dashboard arma los indicadores del tablero: totales de catálogo, conteo de
// movimientos del día por tipo y productos bajo su mínimo. El criterio de
// producto crítico es el mismo de LowStock.
func (r *ReportRepo) Dashboard() (*repository.DashboardSummary, error) {
	const query = `
	SELECT
		(SELECT COUNT(*) FROM products WHERE is_active),
		(SELECT COUNT(*) FROM warehouses WHERE is_active),
		(SELECT COUNT(*) FROM stock_movements WHERE kind = 'IN' AND created_at >= date_trunc('day', now())),
		(SELECT COUNT(*) FROM stock_movements WHERE kind = 'OUT' AND created_at >= date_trunc('day', now())),
		(SELECT COUNT(*) FROM (
			SELECT p.id
			FROM products p
			LEFT JOIN stock_levels sl ON sl.product_id = p.id
			WHERE p.is_active AND p.min_stock_level > 0
			GROUP BY p.id, p.min_stock_level
			HAVING COALESCE(SUM(sl.quantity), 0) < p.min_stock_level
		) critical)`
	var s repository.DashboardSummary
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.TotalProducts, &s.TotalWarehouses, &s.TodayIn, &s.TodayOut, &s.CriticalProducts,
	)
	if err != nil {
		return nil, fmt.Errorf("reports.Dashboard: %w", err)
	}
	return &s, nil
}

// LowStock lista los productos activos cuyo stock sumado en todas las bodegas
// quedó por debajo de su mínimo configurado.
func (r *ReportRepo) LowStock() ([]*repository.LowStockRow, error) {
	const query = `
	SELECT p.id, p.name, p.sku, p.min_stock_level, COALESCE(SUM(sl.quantity), 0) AS total
	FROM products p
	LEFT JOIN stock_levels sl ON sl.product_id = p.id
	WHERE p.is_active AND p.min_stock_level > 0
	GROUP BY p.id, p.name, p.sku, p.min_stock_level
	HAVING COALESCE(SUM(sl.quantity), 0) < p.min_stock_level
	ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("reports.LowStock: %w", err)
	}
	defer rows.Close()

	var out []*repository.LowStockRow
	for rows.Next() {
		var l repository.LowStockRow
		if err := rows.Scan(&l.ProductID, &l.ProductName, &l.SKU, &l.MinStockLevel, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
