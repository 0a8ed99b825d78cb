package dto

// LowStockItemResponse fila del reporte de stock bajo.
type LowStockItemResponse struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Status    string `json:"status"` // siempre "LOW STOCK"
}

// CategoryStatsResponse agregado de una categoría.
type CategoryStatsResponse struct {
	TotalProducts int64 `json:"total_products"`
	TotalQuantity int64 `json:"total_quantity"`
}
