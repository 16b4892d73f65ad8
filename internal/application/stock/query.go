package stock

import (
	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

// QueryUseCase lecturas de saldos, movimientos y estantes para los listados.
// Solo lectura: ninguna regla de negocio cuelga de aquí.
type QueryUseCase struct {
	levelRepo repository.StockLevelRepository
	movRepo   repository.StockMovementRepository
	shelfRepo repository.ShelfRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(
	levelRepo repository.StockLevelRepository,
	movRepo repository.StockMovementRepository,
	shelfRepo repository.ShelfRepository,
) *QueryUseCase {
	return &QueryUseCase{levelRepo: levelRepo, movRepo: movRepo, shelfRepo: shelfRepo}
}

// ListLevels lista los saldos actuales con nombres resueltos.
func (uc *QueryUseCase) ListLevels(limit, offset int) ([]*repository.StockLevelView, error) {
	return uc.levelRepo.ListView(limit, offset)
}

// ListMovements lista el historial de movimientos según filtro.
func (uc *QueryUseCase) ListMovements(filter repository.MovementFilter) ([]*repository.StockMovementView, error) {
	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = 200
	}
	return uc.movRepo.ListView(filter)
}

// ListShelves lista los estantes de una bodega (para selects en cascada).
func (uc *QueryUseCase) ListShelves(warehouseID string) ([]*entity.Shelf, error) {
	if warehouseID == "" {
		return []*entity.Shelf{}, nil
	}
	return uc.shelfRepo.ListByWarehouse(warehouseID)
}
