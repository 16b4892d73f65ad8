package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrUsernameAlreadyExists = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
)

// Errores del motor de movimientos de stock. Toda falla de validación es un
// resultado esperado y recuperable: el caller hace errors.Is y muestra un
// mensaje preciso. Solo ErrPersistenceConflict indica una falla del entorno
// (reintentar puede servir); el resto significa que el request es inválido.
var (
	ErrInvalidKind            = errors.New("tipo de movimiento inválido")
	ErrInvalidQuantity        = errors.New("cantidad inválida para el tipo de movimiento")
	ErrMissingReason          = errors.New("el movimiento ADJUST requiere un motivo")
	ErrShelfNotFound          = errors.New("estante no encontrado")
	ErrShelfWarehouseMismatch = errors.New("el estante no pertenece a la bodega indicada")
	ErrWarehouseUnavailable   = errors.New("bodega inactiva o no encontrada")
	ErrUnknownUser            = errors.New("usuario solicitante no encontrado")
	ErrPermissionDenied       = errors.New("el movimiento ADJUST solo puede hacerlo un admin")
	ErrNegativeStock          = errors.New("operación rechazada: dejaría stock negativo")
	ErrPersistenceConflict    = errors.New("no se pudo actualizar el stock (conflicto de integridad)")
)

// Errores del flujo de compras.
var (
	ErrPurchaseReceived = errors.New("la compra ya fue recibida y no admite cambios")
	ErrPurchaseEmpty    = errors.New("la compra no tiene ítems para recibir")
)
