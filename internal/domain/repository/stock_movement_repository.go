package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
)

// MovementFilter filtros para listar movimientos.
type MovementFilter struct {
	ProductID   string
	WarehouseID string
	Kind        string
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// StockMovementView es la fila del historial de movimientos con nombres
// resueltos (solo lectura).
type StockMovementView struct {
	ID            string
	ProductName   string
	SKU           string
	WarehouseName string
	ShelfCode     *string
	Kind          string
	Quantity      decimal.Decimal
	ReferenceType string
	Reason        *string
	Note          string
	CreatedByName string
	CreatedAt     time.Time
}

// StockMovementRepository es el libro de movimientos: solo append y lectura.
// No existe camino de update ni delete en el core.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	List(filter MovementFilter) ([]*entity.StockMovement, error)
	ListView(filter MovementFilter) ([]*StockMovementView, error)
}
