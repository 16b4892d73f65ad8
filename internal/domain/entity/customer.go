package entity

import "time"

// Customer representa un cliente (destino de salidas de stock).
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
