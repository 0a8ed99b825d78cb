package repository

import "github.com/jhoicas/stock-ledger-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para Movement (DIP).
// El puerto no expone Update ni Delete: el log de movimientos es append-only.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	List(productID string, limit, offset int) ([]*entity.Movement, error)
	CountByProduct(productID string) (int64, error)
}
