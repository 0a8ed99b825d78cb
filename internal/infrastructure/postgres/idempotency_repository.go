package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.IdempotencyKeyRepository = (*IdempotencyKeyRepo)(nil)

// IdempotencyKeyRepo guarda el mapeo clave -> movimiento aplicado. Se escribe
// en la misma transacción que el movimiento: si la tx se revierte, la clave
// tampoco queda y el reintento vuelve a aplicar.
type IdempotencyKeyRepo struct {
	q Querier
}

// NewIdempotencyKeyRepository construye el adaptador de claves de idempotencia.
func NewIdempotencyKeyRepository(q Querier) *IdempotencyKeyRepo {
	return &IdempotencyKeyRepo{q: q}
}

// GetMovementID devuelve el movimiento asociado a la clave, o "" si no existe.
func (r *IdempotencyKeyRepo) GetMovementID(key string) (string, error) {
	var movementID string
	err := r.q.QueryRow(context.Background(),
		`SELECT movement_id FROM idempotency_keys WHERE key = $1`, key,
	).Scan(&movementID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get idempotency key: %w", err)
	}
	return movementID, nil
}

// Save registra la clave como procesada.
func (r *IdempotencyKeyRepo) Save(key, movementID string) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO idempotency_keys (key, movement_id, created_at) VALUES ($1, $2, NOW())`,
		key, movementID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// La clave la confirmó otra transacción concurrente: el caller
			// decide si reintenta la lectura o reporta el conflicto.
			return fmt.Errorf("idempotency key already used: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("save idempotency key: %w", err)
	}
	return nil
}
