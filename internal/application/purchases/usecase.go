package purchases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-wms/internal/application/stock"
	"github.com/tu-usuario/almacen-wms/internal/domain"
	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

// PurchaseUseCase maneja el ciclo de una compra: borrador, ítems y recepción.
// La recepción postea un movimiento IN por ítem a través del motor de stock,
// todo dentro de una transacción propia: si una línea falla, ninguna entra.
type PurchaseUseCase struct {
	txRunner      TxRunner
	engine        StockEngine
	purchaseRepo  repository.PurchaseRepository
	supplierRepo  repository.SupplierRepository
	warehouseRepo repository.WarehouseRepository
	shelfRepo     repository.ShelfRepository
	productRepo   repository.ProductRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	txRunner TxRunner,
	engine StockEngine,
	purchaseRepo repository.PurchaseRepository,
	supplierRepo repository.SupplierRepository,
	warehouseRepo repository.WarehouseRepository,
	shelfRepo repository.ShelfRepository,
	productRepo repository.ProductRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:      txRunner,
		engine:        engine,
		purchaseRepo:  purchaseRepo,
		supplierRepo:  supplierRepo,
		warehouseRepo: warehouseRepo,
		shelfRepo:     shelfRepo,
		productRepo:   productRepo,
	}
}

// CreateInput datos para crear una compra en borrador.
type CreateInput struct {
	SupplierID  string
	WarehouseID string
	ShelfID     *string
	Note        string
	CreatedBy   string
}

// Create crea una compra en estado DRAFT.
func (uc *PurchaseUseCase) Create(in CreateInput) (*entity.Purchase, error) {
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || !supplier.IsActive {
		return nil, domain.ErrNotFound
	}
	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil || !wh.IsActive {
		return nil, domain.ErrWarehouseUnavailable
	}
	if in.ShelfID != nil && *in.ShelfID != "" {
		shelf, err := uc.shelfRepo.GetByID(*in.ShelfID)
		if err != nil {
			return nil, err
		}
		if shelf == nil {
			return nil, domain.ErrShelfNotFound
		}
		if shelf.WarehouseID != in.WarehouseID {
			return nil, domain.ErrShelfWarehouseMismatch
		}
	} else {
		in.ShelfID = nil
	}

	p := &entity.Purchase{
		ID:          uuid.New().String(),
		SupplierID:  in.SupplierID,
		WarehouseID: in.WarehouseID,
		ShelfID:     in.ShelfID,
		Status:      entity.PurchaseStatusDraft,
		Note:        in.Note,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.purchaseRepo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID devuelve la compra con sus ítems.
func (uc *PurchaseUseCase) GetByID(id string) (*entity.Purchase, []*entity.PurchaseItem, error) {
	p, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, domain.ErrNotFound
	}
	items, err := uc.purchaseRepo.ListItems(id)
	if err != nil {
		return nil, nil, err
	}
	return p, items, nil
}

// List lista compras paginadas.
func (uc *PurchaseUseCase) List(limit, offset int) ([]*entity.Purchase, error) {
	return uc.purchaseRepo.List(limit, offset)
}

// AddItem agrega un ítem al borrador. Si el producto ya tiene línea, acumula
// la cantidad en esa línea (unicidad por purchase+product).
func (uc *PurchaseUseCase) AddItem(purchaseID, productID string, quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return domain.ErrInvalidQuantity
	}
	p, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if p.Status != entity.PurchaseStatusDraft {
		return domain.ErrPurchaseReceived
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return domain.ErrNotFound
	}

	existing, err := uc.purchaseRepo.GetItem(purchaseID, productID)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Quantity = existing.Quantity.Add(quantity)
		return uc.purchaseRepo.UpdateItemQuantity(existing)
	}
	return uc.purchaseRepo.CreateItem(&entity.PurchaseItem{
		ID:         uuid.New().String(),
		PurchaseID: purchaseID,
		ProductID:  productID,
		Quantity:   quantity,
	})
}

// RemoveItem elimina un ítem del borrador.
func (uc *PurchaseUseCase) RemoveItem(purchaseID, itemID string) error {
	p, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if p.Status != entity.PurchaseStatusDraft {
		return domain.ErrPurchaseReceived
	}
	return uc.purchaseRepo.DeleteItem(purchaseID, itemID)
}

// Receive recibe la compra: dentro de una sola transacción postea un IN por
// ítem vía el motor y marca la compra como RECEIVED. Cualquier rechazo del
// motor (p. ej. bodega desactivada entre tanto) aborta la recepción completa.
// El gate de estado DRAFT→RECEIVED se re-verifica dentro de la transacción
// leyendo la fila con lock (SELECT ... FOR UPDATE): dos recepciones
// concurrentes quedan serializadas y la segunda ve RECEIVED, así un doble
// submit no puede duplicar entradas.
func (uc *PurchaseUseCase) Receive(ctx context.Context, purchaseID, userID string) error {
	return uc.txRunner.RunPurchase(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		movRepo repository.StockMovementRepository,
		levelRepo repository.StockLevelRepository,
	) error {
		p, err := purchaseRepo.GetByIDForUpdate(purchaseID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if p.Status != entity.PurchaseStatusDraft {
			return domain.ErrPurchaseReceived
		}
		items, err := purchaseRepo.ListItems(purchaseID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return domain.ErrPurchaseEmpty
		}

		now := time.Now().UTC()
		for _, it := range items {
			_, err := uc.engine.ApplyInTx(movRepo, levelRepo, stock.MovementInput{
				ProductID:     it.ProductID,
				WarehouseID:   p.WarehouseID,
				ShelfID:       p.ShelfID,
				Kind:          entity.MovementKindIN,
				Quantity:      it.Quantity,
				ReferenceType: entity.ReferencePurchase,
				Note:          fmt.Sprintf("purchase:%s", p.ID),
				CreatedBy:     userID,
			}, now)
			if err != nil {
				return err
			}
		}

		p.Status = entity.PurchaseStatusReceived
		p.ReceivedBy = &userID
		p.ReceivedAt = &now
		return purchaseRepo.Update(p)
	})
}
