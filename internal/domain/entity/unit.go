package entity

import "time"

// Unit es la unidad de medida de un producto (pcs, kg, caja...).
type Unit struct {
	ID        string
	Name      string // único
	ShortCode string // único
	IsActive  bool
	CreatedAt time.Time
}
