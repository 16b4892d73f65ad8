package purchases

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-wms/internal/application/stock"
	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

// TxRunner abre la transacción que envuelve la recepción completa de una
// compra: o entran todos los movimientos IN y el cambio de estado, o nada.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		movRepo repository.StockMovementRepository,
		levelRepo repository.StockLevelRepository,
	) error) error
}

// StockEngine es el motor de movimientos visto desde compras: la variante
// InTx deja el límite transaccional en manos de este caso de uso.
type StockEngine interface {
	ApplyInTx(
		movRepo repository.StockMovementRepository,
		levelRepo repository.StockLevelRepository,
		in stock.MovementInput,
		now time.Time,
	) (*entity.StockMovement, error)
}
