package ledger

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción con los repos atados
// a la tx. Commit si fn devuelve nil, Rollback si no. La implementación acota
// la espera por locks de fila; al expirar, la operación falla con
// domain.ErrStorage (reintetable por el caller).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		auditRepo repository.AuditRepository,
		idemRepo repository.IdempotencyKeyRepository,
	) error) error
}
