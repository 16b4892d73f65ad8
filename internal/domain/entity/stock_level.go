package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel es el saldo actual de un producto en una ubicación
// (bodega + estante opcional). Es estado derivado: siempre reconstruible
// plegando los StockMovement de la misma llave. ShelfID nulo es una llave
// distinta de cualquier estante concreto, no un comodín.
//
// Las filas se crean perezosamente en el primer movimiento y nunca se borran:
// un saldo que llega a cero queda como fila en cero.
type StockLevel struct {
	ID          string
	ProductID   string
	WarehouseID string
	ShelfID     *string
	Quantity    decimal.Decimal // nunca negativo en reposo
	UpdatedAt   time.Time
}
