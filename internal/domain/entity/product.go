package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Quantity es la cantidad cacheada autoritativa: solo la escribe el reconciler
// de movimientos dentro de su transacción; nunca la API de productos.
// Invariante: Quantity >= 0 después de cualquier transacción confirmada.
type Product struct {
	ID         string
	Name       string
	CategoryID string
	SupplierID string
	Price      decimal.Decimal
	Quantity   int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
