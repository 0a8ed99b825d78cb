package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes. Va directo al pool:
// no participa en las transacciones del ledger.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// LowStock devuelve los productos con cantidad estrictamente menor al umbral,
// los más escasos primero.
func (r *ReportRepo) LowStock(ctx context.Context, threshold int64) ([]repository.LowStockItem, error) {
	query := `
		SELECT id, name, quantity
		FROM products
		WHERE quantity < $1
		ORDER BY quantity ASC, name ASC`
	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("low stock query: %w", err)
	}
	defer rows.Close()

	var items []repository.LowStockItem
	for rows.Next() {
		var item repository.LowStockItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan low stock row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("low stock query: %w", err)
	}
	return items, nil
}

// CategoryStats agrega productos y cantidades por categoría. El INNER JOIN
// omite categorías sin productos.
func (r *ReportRepo) CategoryStats(ctx context.Context) ([]repository.CategoryStatsRow, error) {
	query := `
		SELECT c.name, COUNT(p.id), COALESCE(SUM(p.quantity), 0)
		FROM products p
		INNER JOIN categories c ON c.id = p.category_id
		GROUP BY c.name
		ORDER BY c.name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("category stats query: %w", err)
	}
	defer rows.Close()

	var stats []repository.CategoryStatsRow
	for rows.Next() {
		var row repository.CategoryStatsRow
		if err := rows.Scan(&row.CategoryName, &row.TotalProducts, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan category stats row: %w", err)
		}
		stats = append(stats, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category stats query: %w", err)
	}
	return stats, nil
}
