package repository

import "github.com/jhoicas/stock-ledger-api/internal/domain/entity"

// AuditRepository define el puerto de persistencia para AuditEntry (DIP).
// Append-only, igual que MovementRepository. List devuelve las entradas más
// recientes primero; los empates de timestamp se desempatan por id ascendente.
type AuditRepository interface {
	Create(entry *entity.AuditEntry) error
	List(productID string, limit, offset int) ([]*entity.AuditEntry, error)
	CountByProduct(productID string) (int64, error)
}
