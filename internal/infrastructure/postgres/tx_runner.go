package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stock-ledger-api/internal/application/ledger"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/stock-ledger-api/pkg/config"
)

// TxRunner ejecuta el callback del caso de uso dentro de una transacción,
// con los repos atados al tx para que el FOR UPDATE serialice por producto.
type TxRunner struct {
	pool *pgxpool.Pool
	cfg  config.StockConfig
}

var _ ledger.TxRunner = (*TxRunner)(nil)

func NewTxRunner(pool *pgxpool.Pool, cfg config.StockConfig) *TxRunner {
	return &TxRunner{pool: pool, cfg: cfg}
}

func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	auditRepo repository.AuditRepository,
	idemRepo repository.IdempotencyKeyRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error al iniciar la transacción: %w", domain.ErrStorage)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Cota superior a la espera por el lock de fila: un timeout aquí sale
	// como 55P03 y se reporta como ErrStorage reintentable.
	timeout := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.cfg.LockTimeout.Milliseconds())
	if _, err := tx.Exec(ctx, timeout); err != nil {
		return fmt.Errorf("error al configurar lock_timeout: %w", domain.ErrStorage)
	}

	err = fn(
		NewProductRepository(tx),
		NewMovementRepository(tx),
		NewAuditRepository(tx),
		NewIdempotencyKeyRepository(tx),
	)
	if err != nil {
		return classify(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error al confirmar la transacción (%v): %w", err, domain.ErrStorage)
	}
	return nil
}
