package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-wms/internal/application/dto"
	"github.com/tu-usuario/almacen-wms/internal/domain"
	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

// WarehouseUseCase casos de uso para bodegas y sus estantes.
// Las bodegas no se borran: se desactivan, porque el libro de movimientos
// las referencia para siempre.
type WarehouseUseCase struct {
	repo      repository.WarehouseRepository
	shelfRepo repository.ShelfRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, shelfRepo repository.ShelfRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, shelfRepo: shelfRepo}
}

// Create crea una nueva bodega activa.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(warehouse), nil
}

// Update actualiza nombre, dirección o estado activo de una bodega.
func (uc *WarehouseUseCase) Update(id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		warehouse.Name = *in.Name
	}
	if in.Address != nil {
		warehouse.Address = *in.Address
	}
	if in.IsActive != nil {
		warehouse.IsActive = *in.IsActive
	}
	warehouse.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista bodegas con paginación; onlyActive filtra las desactivadas.
func (uc *WarehouseUseCase) List(onlyActive bool, limit, offset int) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

// CreateShelf crea un estante dentro de una bodega existente.
func (uc *WarehouseUseCase) CreateShelf(warehouseID string, in dto.CreateShelfRequest) (*dto.ShelfResponse, error) {
	if in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.repo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	shelf := &entity.Shelf{
		ID:          uuid.New().String(),
		WarehouseID: warehouseID,
		Code:        in.Code,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.shelfRepo.Create(shelf); err != nil {
		return nil, err
	}
	return toShelfResponse(shelf), nil
}

// ListShelves lista los estantes de una bodega (para selects en cascada).
func (uc *WarehouseUseCase) ListShelves(warehouseID string) ([]dto.ShelfResponse, error) {
	list, err := uc.shelfRepo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShelfResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShelfResponse(s))
	}
	return items, nil
}

// DeleteShelf elimina un estante. Falla con conflicto de integridad si el
// estante ya tiene movimientos o saldos asociados.
func (uc *WarehouseUseCase) DeleteShelf(id string) error {
	return uc.shelfRepo.Delete(id)
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:       w.ID,
		Name:     w.Name,
		Address:  w.Address,
		IsActive: w.IsActive,
	}
}

func toShelfResponse(s *entity.Shelf) *dto.ShelfResponse {
	if s == nil {
		return nil
	}
	return &dto.ShelfResponse{
		ID:          s.ID,
		WarehouseID: s.WarehouseID,
		Code:        s.Code,
		Description: s.Description,
	}
}
