package repository

import "github.com/tu-usuario/almacen-wms/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Search recibe un término ya normalizado (minúsculas, sin acentos) y busca
// sobre nombre y SKU normalizados.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(onlyActive bool, limit, offset int) ([]*entity.Product, error)
	Search(term string, limit, offset int) ([]*entity.Product, error)
}

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
}

// UnitRepository define el puerto de persistencia para Unit.
type UnitRepository interface {
	Create(unit *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	GetByShortCode(code string) (*entity.Unit, error)
	Update(unit *entity.Unit) error
	List(onlyActive bool) ([]*entity.Unit, error)
}
