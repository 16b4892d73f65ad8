package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)
var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// Proveedores y clientes comparten columnas; las consultas se generan por
// nombre de tabla para no duplicar el SQL.

type partnerRow struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func partnerInsert(q Querier, table string, p partnerRow) error {
	query := `
		INSERT INTO ` + table + ` (id, name, phone, email, address, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := q.Exec(context.Background(), query,
		p.ID, p.Name, p.Phone, p.Email, p.Address, p.IsActive, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}
	return nil
}

func partnerGet(q Querier, table, id string) (*partnerRow, error) {
	query := `
		SELECT id, name, phone, email, address, is_active, created_at, updated_at
		FROM ` + table + ` WHERE id = $1`
	var p partnerRow
	err := q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Phone, &p.Email, &p.Address, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", table, err)
	}
	return &p, nil
}

func partnerUpdate(q Querier, table string, p partnerRow) error {
	query := `
		UPDATE ` + table + ` SET name = $2, phone = $3, email = $4, address = $5,
		       is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := q.Exec(context.Background(), query,
		p.ID, p.Name, p.Phone, p.Email, p.Address, p.IsActive, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	return nil
}

func partnerList(q Querier, table string, onlyActive bool, limit, offset int) ([]*partnerRow, error) {
	query := `
		SELECT id, name, phone, email, address, is_active, created_at, updated_at
		FROM ` + table
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	var list []*partnerRow
	for rows.Next() {
		var p partnerRow
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &p.Address,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func (r *SupplierRepo) Create(s *entity.Supplier) error {
	return partnerInsert(r.q, "suppliers", partnerRow(*s))
}

func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	p, err := partnerGet(r.q, "suppliers", id)
	if err != nil || p == nil {
		return nil, err
	}
	s := entity.Supplier(*p)
	return &s, nil
}

func (r *SupplierRepo) Update(s *entity.Supplier) error {
	return partnerUpdate(r.q, "suppliers", partnerRow(*s))
}

func (r *SupplierRepo) List(onlyActive bool, limit, offset int) ([]*entity.Supplier, error) {
	rows, err := partnerList(r.q, "suppliers", onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Supplier, 0, len(rows))
	for _, p := range rows {
		s := entity.Supplier(*p)
		list = append(list, &s)
	}
	return list, nil
}

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func (r *CustomerRepo) Create(c *entity.Customer) error {
	return partnerInsert(r.q, "customers", partnerRow(*c))
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	p, err := partnerGet(r.q, "customers", id)
	if err != nil || p == nil {
		return nil, err
	}
	c := entity.Customer(*p)
	return &c, nil
}

func (r *CustomerRepo) Update(c *entity.Customer) error {
	return partnerUpdate(r.q, "customers", partnerRow(*c))
}

func (r *CustomerRepo) List(onlyActive bool, limit, offset int) ([]*entity.Customer, error) {
	rows, err := partnerList(r.q, "customers", onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Customer, 0, len(rows))
	for _, p := range rows {
		c := entity.Customer(*p)
		list = append(list, &c)
	}
	return list, nil
}
