package stock

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-wms/internal/domain"
	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

// ApplyMovementUseCase es el motor de movimientos de stock: única puerta de
// escritura sobre StockLevel y StockMovement. Valida el request, calcula el
// delta con la fila de saldo bloqueada (SELECT FOR UPDATE) y confirma libro y
// saldo en una sola transacción.
type ApplyMovementUseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
	shelfRepo     repository.ShelfRepository
	userRepo      repository.UserRepository
}

// NewApplyMovementUseCase construye el motor.
func NewApplyMovementUseCase(
	txRunner TxRunner,
	warehouseRepo repository.WarehouseRepository,
	shelfRepo repository.ShelfRepository,
	userRepo repository.UserRepository,
) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{
		txRunner:      txRunner,
		warehouseRepo: warehouseRepo,
		shelfRepo:     shelfRepo,
		userRepo:      userRepo,
	}
}

// MovementInput entrada para aplicar un movimiento de stock.
// Para IN/OUT Quantity es la cantidad movida (el signo lo pone el tipo, no el
// caller). Para ADJUST Quantity es el saldo objetivo absoluto y Reason es
// obligatorio.
type MovementInput struct {
	ProductID     string
	WarehouseID   string
	ShelfID       *string
	Kind          string
	Quantity      decimal.Decimal
	ReferenceType string
	Reason        string
	Note          string
	CreatedBy     string
}

// Apply valida el movimiento, abre una transacción y lo aplica.
// Devuelve la entrada del libro creada o un error de la taxonomía de
// domain (ErrInvalidKind, ErrInvalidQuantity, ...). No es idempotente:
// aplicarlo dos veces postea dos movimientos.
func (uc *ApplyMovementUseCase) Apply(ctx context.Context, in MovementInput) (*entity.StockMovement, error) {
	v, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	var created *entity.StockMovement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		levelRepo repository.StockLevelRepository,
	) error {
		m, err := applyLocked(movRepo, levelRepo, v, time.Now().UTC())
		if err != nil {
			return err
		}
		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ApplyInTx aplica un movimiento usando repositorios atados a la transacción
// del caller (p. ej. la recepción de una compra). El motor no hace Commit ni
// Rollback aquí: el límite transaccional es del caller. La validación es
// idéntica a Apply.
func (uc *ApplyMovementUseCase) ApplyInTx(
	movRepo repository.StockMovementRepository,
	levelRepo repository.StockLevelRepository,
	in MovementInput,
	now time.Time,
) (*entity.StockMovement, error) {
	v, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	return applyLocked(movRepo, levelRepo, v, now)
}

// validate corre el pipeline de validación (cerrado ante fallas: gana la
// primera regla que falla) y devuelve el input normalizado.
func (uc *ApplyMovementUseCase) validate(in MovementInput) (MovementInput, error) {
	in.Kind = strings.ToUpper(strings.TrimSpace(in.Kind))
	in.ReferenceType = strings.ToLower(strings.TrimSpace(in.ReferenceType))
	in.Reason = strings.TrimSpace(in.Reason)

	// 1) Tipo de movimiento
	switch in.Kind {
	case entity.MovementKindIN, entity.MovementKindOUT, entity.MovementKindADJUST:
	default:
		return in, domain.ErrInvalidKind
	}

	// 2) IN/OUT: cantidad estrictamente positiva
	if in.Kind == entity.MovementKindIN || in.Kind == entity.MovementKindOUT {
		if !in.Quantity.IsPositive() {
			return in, domain.ErrInvalidQuantity
		}
	}

	// 3) ADJUST: la cantidad es el saldo objetivo (>= 0) y el motivo es obligatorio
	if in.Kind == entity.MovementKindADJUST {
		if in.Quantity.IsNegative() {
			return in, domain.ErrInvalidQuantity
		}
		if in.Reason == "" {
			return in, domain.ErrMissingReason
		}
	}

	// 4) Estante: debe existir y pertenecer a la bodega del request
	if in.ShelfID != nil && *in.ShelfID != "" {
		shelf, err := uc.shelfRepo.GetByID(*in.ShelfID)
		if err != nil {
			return in, err
		}
		if shelf == nil {
			return in, domain.ErrShelfNotFound
		}
		if shelf.WarehouseID != in.WarehouseID {
			return in, domain.ErrShelfWarehouseMismatch
		}
	} else {
		in.ShelfID = nil
	}

	// 5) Bodega: debe existir y estar activa
	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return in, err
	}
	if wh == nil || !wh.IsActive {
		return in, domain.ErrWarehouseUnavailable
	}

	// 6) Usuario solicitante; ADJUST exige admin. El motor no confía en que la
	// ruta ya lo haya verificado: hay callers que no pasan por ese gate.
	user, err := uc.userRepo.GetByID(in.CreatedBy)
	if err != nil {
		return in, err
	}
	if user == nil {
		return in, domain.ErrUnknownUser
	}
	if in.Kind == entity.MovementKindADJUST && !user.IsAdmin() {
		return in, domain.ErrPermissionDenied
	}

	return in, nil
}

// applyLocked resuelve el saldo con la fila bloqueada, calcula el delta y
// escribe libro + saldo. Se asume input ya validado y transacción abierta.
func applyLocked(
	movRepo repository.StockMovementRepository,
	levelRepo repository.StockLevelRepository,
	in MovementInput,
	now time.Time,
) (*entity.StockMovement, error) {
	level, err := levelRepo.GetForUpdate(in.ProductID, in.WarehouseID, in.ShelfID)
	if err != nil {
		return nil, err
	}
	current := level.Quantity

	var newQty, ledgerQty decimal.Decimal
	switch in.Kind {
	case entity.MovementKindIN:
		ledgerQty = in.Quantity.Abs()
		newQty = current.Add(ledgerQty)
	case entity.MovementKindOUT:
		ledgerQty = in.Quantity.Abs()
		newQty = current.Sub(ledgerQty)
	case entity.MovementKindADJUST:
		// La cantidad del libro es la corrección firmada realmente aplicada.
		newQty = in.Quantity
		ledgerQty = newQty.Sub(current)
	}

	// Después de calcular el delta y antes de cualquier escritura.
	if newQty.IsNegative() {
		return nil, domain.ErrNegativeStock
	}

	var reason *string
	if in.Reason != "" {
		r := in.Reason
		reason = &r
	}
	mov := &entity.StockMovement{
		ID:            uuid.New().String(),
		ProductID:     in.ProductID,
		WarehouseID:   in.WarehouseID,
		ShelfID:       in.ShelfID,
		Kind:          in.Kind,
		Quantity:      ledgerQty,
		ReferenceType: in.ReferenceType,
		Reason:        reason,
		Note:          in.Note,
		CreatedBy:     in.CreatedBy,
		CreatedAt:     now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}

	level.Quantity = newQty
	level.UpdatedAt = now
	if err := levelRepo.Upsert(level); err != nil {
		return nil, err
	}
	return mov, nil
}
