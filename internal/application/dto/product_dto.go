package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. La cantidad inicial es siempre 0:
// el stock solo entra por movimientos.
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,max=100"`
	CategoryID string          `json:"category_id" validate:"required,uuid4"`
	SupplierID string          `json:"supplier_id" validate:"required,uuid4"`
	Price      decimal.Decimal `json:"price"`
}

// UpdateProductRequest actualización parcial de producto.
// No incluye quantity: la cantidad la escribe únicamente el reconciler.
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,max=100"`
	CategoryID *string          `json:"category_id" validate:"omitempty,uuid4"`
	SupplierID *string          `json:"supplier_id" validate:"omitempty,uuid4"`
	Price      *decimal.Decimal `json:"price"`
}

// ListProductsRequest filtros del listado de productos.
type ListProductsRequest struct {
	PageRequest
	CategoryID string `query:"category_id" validate:"omitempty,uuid4"`
	SupplierID string `query:"supplier_id" validate:"omitempty,uuid4"`
	Search     string `query:"search" validate:"omitempty,max=100"`
	Ordering   string `query:"ordering" validate:"omitempty,oneof=name -name price -price quantity -quantity created_at -created_at"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	CategoryID string          `json:"category_id"`
	SupplierID string          `json:"supplier_id"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int64           `json:"quantity"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Page     PageResponse      `json:"page"`
}
