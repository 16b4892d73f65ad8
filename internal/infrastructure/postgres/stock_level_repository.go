package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-wms/internal/domain"
	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementación de StockLevelRepository sobre PostgreSQL
// (usable con pool o tx). La llave es (product_id, warehouse_id, shelf_id)
// con shelf_id nulo como valor propio: la comparación usa IS NOT DISTINCT FROM
// y la unicidad la garantiza un índice sobre COALESCE(shelf_id, '').
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador de saldos. Pasar pool o tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

const stockLevelColumns = `id, product_id, warehouse_id, shelf_id, quantity, updated_at`

// Get obtiene el saldo de una llave; si no hay fila devuelve un saldo en cero
// sin materializarlo.
func (r *StockLevelRepo) Get(productID, warehouseID string, shelfID *string) (*entity.StockLevel, error) {
	query := `
		SELECT ` + stockLevelColumns + `
		FROM stock_levels
		WHERE product_id = $1 AND warehouse_id = $2 AND shelf_id IS NOT DISTINCT FROM $3`
	var lv entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID, shelfID).Scan(
		&lv.ID, &lv.ProductID, &lv.WarehouseID, &lv.ShelfID, &lv.Quantity, &lv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zeroLevel(productID, warehouseID, shelfID), nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &lv, nil
}

// GetForUpdate obtiene el saldo y bloquea la fila (SELECT FOR UPDATE). Si la
// fila no existe la inserta en cero y vuelve a bloquearla: el primer
// movimiento de una llave serializa igual que los siguientes.
func (r *StockLevelRepo) GetForUpdate(productID, warehouseID string, shelfID *string) (*entity.StockLevel, error) {
	query := `
		SELECT ` + stockLevelColumns + `
		FROM stock_levels
		WHERE product_id = $1 AND warehouse_id = $2 AND shelf_id IS NOT DISTINCT FROM $3
		FOR UPDATE`
	var lv entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID, shelfID).Scan(
		&lv.ID, &lv.ProductID, &lv.WarehouseID, &lv.ShelfID, &lv.Quantity, &lv.UpdatedAt,
	)
	if err == nil {
		return &lv, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get stock level for update: %w", err)
	}

	// Materializar en cero. ON CONFLICT DO NOTHING deja ganar a cualquier
	// inserción concurrente; el re-SELECT FOR UPDATE queda esperando su lock.
	insert := `
		INSERT INTO stock_levels (id, product_id, warehouse_id, shelf_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, 0, now())
		ON CONFLICT DO NOTHING`
	if _, err := r.q.Exec(context.Background(), insert, uuid.New().String(), productID, warehouseID, shelfID); err != nil {
		if isIntegrityViolation(err) {
			return nil, domain.ErrPersistenceConflict
		}
		return nil, fmt.Errorf("materializar stock level: %w", err)
	}
	err = r.q.QueryRow(context.Background(), query, productID, warehouseID, shelfID).Scan(
		&lv.ID, &lv.ProductID, &lv.WarehouseID, &lv.ShelfID, &lv.Quantity, &lv.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get stock level for update: %w", err)
	}
	return &lv, nil
}

// Upsert escribe el saldo. Corre siempre detrás de GetForUpdate, así que la
// fila existe y está bloqueada; el INSERT cubre el uso fuera del motor.
func (r *StockLevelRepo) Upsert(level *entity.StockLevel) error {
	update := `
		UPDATE stock_levels SET quantity = $4, updated_at = now()
		WHERE product_id = $1 AND warehouse_id = $2 AND shelf_id IS NOT DISTINCT FROM $3`
	tag, err := r.q.Exec(context.Background(), update,
		level.ProductID, level.WarehouseID, level.ShelfID, level.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	insert := `
		INSERT INTO stock_levels (id, product_id, warehouse_id, shelf_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())`
	if _, err := r.q.Exec(context.Background(), insert,
		level.ID, level.ProductID, level.WarehouseID, level.ShelfID, level.Quantity); err != nil {
		if isIntegrityViolation(err) {
			return domain.ErrPersistenceConflict
		}
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}

// ListView lista los saldos con nombres de producto, bodega y estante resueltos.
func (r *StockLevelRepo) ListView(limit, offset int) ([]*repository.StockLevelView, error) {
	query := `
		SELECT sl.product_id, p.name, p.sku,
		       sl.warehouse_id, w.name, s.code,
		       sl.quantity, sl.updated_at
		FROM stock_levels sl
		JOIN products p ON p.id = sl.product_id
		JOIN warehouses w ON w.id = sl.warehouse_id
		LEFT JOIN shelves s ON s.id = sl.shelf_id
		ORDER BY w.name, p.name, s.code NULLS FIRST
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()

	var out []*repository.StockLevelView
	for rows.Next() {
		var v repository.StockLevelView
		if err := rows.Scan(
			&v.ProductID, &v.ProductName, &v.SKU,
			&v.WarehouseID, &v.WarehouseName, &v.ShelfCode,
			&v.Quantity, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

func zeroLevel(productID, warehouseID string, shelfID *string) *entity.StockLevel {
	return &entity.StockLevel{
		ProductID:   productID,
		WarehouseID: warehouseID,
		ShelfID:     shelfID,
		Quantity:    decimal.Zero,
	}
}
