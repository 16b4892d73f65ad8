package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-wms/internal/domain"
	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL
// (usable con pool o tx; la recepción corre siempre dentro de una tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `id, supplier_id, warehouse_id, shelf_id, status, note, created_by, created_at, received_by, received_at`

// Create persiste una compra en borrador.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SupplierID, p.WarehouseID, p.ShelfID, p.Status, p.Note,
		p.CreatedBy, p.CreatedAt, p.ReceivedBy, p.ReceivedAt,
	)
	if err != nil {
		if isIntegrityViolation(err) {
			return domain.ErrPersistenceConflict
		}
		return fmt.Errorf("create purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.SupplierID, &p.WarehouseID, &p.ShelfID, &p.Status, &p.Note,
		&p.CreatedBy, &p.CreatedAt, &p.ReceivedBy, &p.ReceivedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// GetByIDForUpdate obtiene una compra bloqueando su fila hasta el fin de la
// transacción. Una recepción concurrente espera aquí y relee la versión ya
// confirmada, así el gate de estado no puede evaluarse sobre una foto vieja.
func (r *PurchaseRepo) GetByIDForUpdate(id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1 FOR UPDATE`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.SupplierID, &p.WarehouseID, &p.ShelfID, &p.Status, &p.Note,
		&p.CreatedBy, &p.CreatedAt, &p.ReceivedBy, &p.ReceivedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase for update: %w", err)
	}
	return &p, nil
}

// Update actualiza el estado y los metadatos de recepción de una compra.
func (r *PurchaseRepo) Update(p *entity.Purchase) error {
	query := `
		UPDATE purchases SET status = $2, note = $3, received_by = $4, received_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Status, p.Note, p.ReceivedBy, p.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	return nil
}

// List lista compras de la más reciente a la más antigua.
func (r *PurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.WarehouseID, &p.ShelfID, &p.Status,
			&p.Note, &p.CreatedBy, &p.CreatedAt, &p.ReceivedBy, &p.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetItem obtiene la línea de un producto dentro de una compra, si existe.
func (r *PurchaseRepo) GetItem(purchaseID, productID string) (*entity.PurchaseItem, error) {
	query := `
		SELECT id, purchase_id, product_id, quantity
		FROM purchase_items WHERE purchase_id = $1 AND product_id = $2`
	var it entity.PurchaseItem
	err := r.q.QueryRow(context.Background(), query, purchaseID, productID).Scan(
		&it.ID, &it.PurchaseID, &it.ProductID, &it.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase item: %w", err)
	}
	return &it, nil
}

// CreateItem agrega una línea. El índice único (purchase_id, product_id)
// respalda el merge que hace el use case.
func (r *PurchaseRepo) CreateItem(item *entity.PurchaseItem) error {
	query := `
		INSERT INTO purchase_items (id, purchase_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PurchaseID, item.ProductID, item.Quantity)
	if err != nil {
		if isIntegrityViolation(err) {
			return domain.ErrPersistenceConflict
		}
		return fmt.Errorf("create purchase item: %w", err)
	}
	return nil
}

// UpdateItemQuantity actualiza la cantidad de una línea existente.
func (r *PurchaseRepo) UpdateItemQuantity(item *entity.PurchaseItem) error {
	query := `UPDATE purchase_items SET quantity = $2 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.Quantity)
	if err != nil {
		return fmt.Errorf("update purchase item: %w", err)
	}
	return nil
}

// DeleteItem elimina una línea de una compra.
func (r *PurchaseRepo) DeleteItem(purchaseID, itemID string) error {
	query := `DELETE FROM purchase_items WHERE purchase_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query, purchaseID, itemID)
	if err != nil {
		return fmt.Errorf("delete purchase item: %w", err)
	}
	return nil
}

// ListItems lista las líneas de una compra.
func (r *PurchaseRepo) ListItems(purchaseID string) ([]*entity.PurchaseItem, error) {
	query := `
		SELECT id, purchase_id, product_id, quantity
		FROM purchase_items WHERE purchase_id = $1 ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseItem
	for rows.Next() {
		var it entity.PurchaseItem
		if err := rows.Scan(&it.ID, &it.PurchaseID, &it.ProductID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
