package entity

import "time"

// Warehouse representa una bodega física donde se almacena inventario.
type Warehouse struct {
	ID        string
	Name      string // único
	Address   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
