package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
)

// StockLevelView es la fila del listado de stock con nombres resueltos
// (solo lectura, sin reglas de negocio).
type StockLevelView struct {
	ProductID     string
	ProductName   string
	SKU           string
	WarehouseID   string
	WarehouseName string
	ShelfCode     *string
	Quantity      decimal.Decimal
	UpdatedAt     time.Time
}

// StockLevelRepository es el almacén de saldos: storage llave-valor durable
// con unicidad sobre (product, warehouse, shelf). ShelfID nulo se compara
// como valor propio, no como comodín. Ninguna validación de negocio vive
// aquí; el motor de movimientos es su único escritor.
type StockLevelRepository interface {
	Get(productID, warehouseID string, shelfID *string) (*entity.StockLevel, error)
	// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE) durante la
	// transacción en curso. Si la fila no existe la materializa en cero y
	// la bloquea: dos primeros movimientos concurrentes sobre la misma llave
	// quedan serializados igual que sobre una fila preexistente.
	GetForUpdate(productID, warehouseID string, shelfID *string) (*entity.StockLevel, error)
	Upsert(level *entity.StockLevel) error
	ListView(limit, offset int) ([]*StockLevelView, error)
}
