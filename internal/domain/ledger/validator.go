// Package ledger contiene las reglas puras del ledger de stock.
package ledger

import (
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// Check decide si un movimiento propuesto puede aplicarse sobre la cantidad
// actual. Sin efectos secundarios: es seguro llamarlo de forma especulativa
// (p.ej. un preview), pero el reconciler lo re-ejecuta dentro de su
// transacción con la fila bloqueada, porque entre chequeo y commit la
// cantidad puede cambiar.
func Check(current int64, movementType string, amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidMovement
	}
	switch movementType {
	case entity.MovementTypeIn:
		// IN no tiene cota superior.
		return nil
	case entity.MovementTypeOut:
		if current < amount {
			return domain.ErrInsufficientStock
		}
		return nil
	default:
		return domain.ErrInvalidMovement
	}
}

// Delta devuelve el cambio con signo que produce el movimiento.
func Delta(movementType string, amount int64) int64 {
	if movementType == entity.MovementTypeOut {
		return -amount
	}
	return amount
}
