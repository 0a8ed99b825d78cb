package repository

import "github.com/jhoicas/stock-ledger-api/internal/domain/entity"

// ProductFilter filtros y paginación para el listado de productos.
type ProductFilter struct {
	CategoryID string
	SupplierID string
	Search     string // búsqueda por nombre, sin distinción de acentos
	OrderBy    string // columna de la whitelist; prefijo "-" para descendente
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateQuantity y GetForUpdate existen solo para el reconciler del ledger:
// ningún otro código escribe la columna quantity.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(productID string, quantity int64) error
	List(filter ProductFilter) ([]*entity.Product, int, error)
	Delete(id string) error
}
