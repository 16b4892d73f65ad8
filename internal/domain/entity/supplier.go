package entity

import "time"

// Supplier representa un proveedor (origen de las compras).
type Supplier struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
