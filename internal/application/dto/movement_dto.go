package dto

import "time"

// ApplyMovementRequest petición para registrar un movimiento de stock.
// IdempotencyKey es opcional: si el caller la envía y reintenta tras un
// ErrStorage, el reintento devuelve el movimiento previo sin aplicar nada.
type ApplyMovementRequest struct {
	ProductID      string `json:"product_id" validate:"required,uuid4"`
	Type           string `json:"type" validate:"required,oneof=IN OUT"`
	Amount         int64  `json:"amount" validate:"required,gt=0"`
	IdempotencyKey string `json:"idempotency_key" validate:"omitempty,max=128"`
}

// MovementResponse representación HTTP de un movimiento.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditEntryResponse representación HTTP de una entrada de auditoría.
type AuditEntryResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Delta     int64     `json:"delta"`
	Type      string    `json:"type"`
	ActorID   *string   `json:"actor_id"`
	CreatedAt time.Time `json:"created_at"`
}
