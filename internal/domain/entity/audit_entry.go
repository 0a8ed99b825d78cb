package entity

import "time"

// AuditEntry representa una entrada inmutable del registro de auditoría.
// Se escribe exactamente una por movimiento confirmado, en la misma
// transacción. ActorID es una referencia débil: si el usuario se elimina,
// la FK se anula pero la entrada persiste.
type AuditEntry struct {
	ID        string
	ProductID string
	Delta     int64 // cambio con signo aplicado a la cantidad
	Type      string
	ActorID   *string
	CreatedAt time.Time
}
