package entity

import "time"

// Shelf representa un estante dentro de una bodega. Code es único por bodega.
// El stock puede llevarse a nivel de estante o a nivel de bodega (shelf nulo).
type Shelf struct {
	ID          string
	WarehouseID string
	Code        string
	Description string
	CreatedAt   time.Time
}
