package repository

import "github.com/tu-usuario/almacen-wms/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List(onlyActive bool, limit, offset int) ([]*entity.Warehouse, error)
}

// ShelfRepository define el puerto de persistencia para Shelf.
type ShelfRepository interface {
	Create(shelf *entity.Shelf) error
	GetByID(id string) (*entity.Shelf, error)
	ListByWarehouse(warehouseID string) ([]*entity.Shelf, error)
	Delete(id string) error
}
