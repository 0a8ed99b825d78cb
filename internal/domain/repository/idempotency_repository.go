package repository

// IdempotencyKeyRepository persiste las claves de idempotencia de applyMovement.
// La clave se guarda en la misma transacción que el movimiento; un reintento
// con la misma clave encuentra el movimiento previo y no aplica nada.
type IdempotencyKeyRepository interface {
	GetMovementID(key string) (string, error) // "" si la clave no existe
	Save(key, movementID string) error
}
