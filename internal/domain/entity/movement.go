package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "IN"  // entrada
	MovementTypeOut = "OUT" // salida
)

// Movement representa un movimiento de stock (entrada o salida).
// Es append-only: una vez creado no se actualiza, no se reordena y no se
// borra; una corrección se registra como movimiento compensatorio.
type Movement struct {
	ID        string
	ProductID string
	Type      string // IN | OUT
	Amount    int64  // siempre positivo; el signo lo da Type
	CreatedAt time.Time
}
