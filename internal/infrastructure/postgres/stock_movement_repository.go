package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-wms/internal/domain"
	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: no hay UPDATE ni DELETE sobre
// stock_movements en ninguna ruta de este repo.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `id, product_id, warehouse_id, shelf_id, kind, quantity, reference_type, reason, note, created_by, created_at`

// Create agrega un asiento al libro.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.WarehouseID, movement.ShelfID,
		movement.Kind, movement.Quantity, movement.ReferenceType, movement.Reason,
		movement.Note, movement.CreatedBy, movement.CreatedAt,
	)
	if err != nil {
		if isIntegrityViolation(err) {
			return domain.ErrPersistenceConflict
		}
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.WarehouseID, &m.ShelfID, &m.Kind,
		&m.Quantity, &m.ReferenceType, &m.Reason, &m.Note, &m.CreatedBy, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// List lista asientos aplicando los filtros no vacíos, del más reciente al más antiguo.
func (r *StockMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE 1=1`
	query, args := applyMovementFilter(query, nil, filter, "")

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.WarehouseID, &m.ShelfID, &m.Kind,
			&m.Quantity, &m.ReferenceType, &m.Reason, &m.Note, &m.CreatedBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListView lista asientos con nombres resueltos para el historial HTTP.
func (r *StockMovementRepo) ListView(filter repository.MovementFilter) ([]*repository.StockMovementView, error) {
	query := `
		SELECT m.id, p.name, p.sku, w.name, s.code,
		       m.kind, m.quantity, m.reference_type, m.reason, m.note,
		       u.name, m.created_at
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		JOIN warehouses w ON w.id = m.warehouse_id
		LEFT JOIN shelves s ON s.id = m.shelf_id
		JOIN users u ON u.id = m.created_by
		WHERE 1=1`
	query, args := applyMovementFilter(query, nil, filter, "m.")

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movement view: %w", err)
	}
	defer rows.Close()

	var list []*repository.StockMovementView
	for rows.Next() {
		var v repository.StockMovementView
		if err := rows.Scan(
			&v.ID, &v.ProductName, &v.SKU, &v.WarehouseName, &v.ShelfCode,
			&v.Kind, &v.Quantity, &v.ReferenceType, &v.Reason, &v.Note,
			&v.CreatedByName, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement view: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// applyMovementFilter agrega las cláusulas de los filtros no vacíos y el
// ORDER BY/LIMIT final. prefix califica las columnas cuando hay joins.
func applyMovementFilter(query string, args []any, f repository.MovementFilter, prefix string) (string, []any) {
	pos := len(args) + 1
	if f.ProductID != "" {
		query += fmt.Sprintf(" AND %sproduct_id = $%d", prefix, pos)
		args = append(args, f.ProductID)
		pos++
	}
	if f.WarehouseID != "" {
		query += fmt.Sprintf(" AND %swarehouse_id = $%d", prefix, pos)
		args = append(args, f.WarehouseID)
		pos++
	}
	if f.Kind != "" {
		query += fmt.Sprintf(" AND %skind = $%d", prefix, pos)
		args = append(args, f.Kind)
		pos++
	}
	if f.From != nil {
		query += fmt.Sprintf(" AND %screated_at >= $%d", prefix, pos)
		args = append(args, *f.From)
		pos++
	}
	if f.To != nil {
		query += fmt.Sprintf(" AND %screated_at <= $%d", prefix, pos)
		args = append(args, *f.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY %screated_at DESC LIMIT $%d OFFSET $%d", prefix, pos, pos+1)
	args = append(args, f.Limit, f.Offset)
	return query, args
}
