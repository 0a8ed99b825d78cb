package repository

import "context"

// LowStockItem fila del listado de stock bajo.
type LowStockItem struct {
	ProductID string
	Name      string
	Quantity  int64
}

// CategoryStatsRow agregado por categoría. Las categorías sin productos no
// producen fila (sin filas en cero).
type CategoryStatsRow struct {
	CategoryName  string
	TotalProducts int64
	TotalQuantity int64
}

// ReportRepository consultas de solo lectura para reportes de inventario.
type ReportRepository interface {
	LowStock(ctx context.Context, threshold int64) ([]LowStockItem, error)
	CategoryStats(ctx context.Context) ([]CategoryStatsRow, error)
}
