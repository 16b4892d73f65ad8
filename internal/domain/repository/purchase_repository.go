package repository

import "github.com/tu-usuario/almacen-wms/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para Purchase y sus ítems.
// El ítem es único por (purchase, product); GetItem permite acumular cantidad
// en lugar de duplicar la línea.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	// GetByIDForUpdate bloquea la fila de la compra (SELECT ... FOR UPDATE)
	// durante la transacción en curso. El gate DRAFT→RECEIVED solo es seguro
	// leyendo con este lock: dos recepciones concurrentes quedan serializadas
	// y la segunda ve el estado RECEIVED que confirmó la primera.
	GetByIDForUpdate(id string) (*entity.Purchase, error)
	Update(purchase *entity.Purchase) error
	List(limit, offset int) ([]*entity.Purchase, error)

	GetItem(purchaseID, productID string) (*entity.PurchaseItem, error)
	CreateItem(item *entity.PurchaseItem) error
	UpdateItemQuantity(item *entity.PurchaseItem) error
	DeleteItem(purchaseID, itemID string) error
	ListItems(purchaseID string) ([]*entity.PurchaseItem, error)
}
