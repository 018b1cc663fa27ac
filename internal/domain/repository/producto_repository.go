package repository

import "github.com/uis-entornos/comercio-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	List() ([]*entity.Producto, error)
	// ListBySucursal es el único índice secundario del almacén.
	ListBySucursal(sucursalID string) ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
	Delete(id string) error

	// DecrementStock descuenta cantidad unidades solo si el stock actual
	// alcanza (stock = stock - N si stock >= N, en una sola operación).
	// Dos ventas concurrentes sobre el mismo producto nunca sobrevenden.
	// Retorna el producto actualizado, o *domain.InsufficientStockError si
	// el stock no alcanza, o *domain.NotFoundError si el producto no existe.
	DecrementStock(id string, cantidad int) (*entity.Producto, error)
}
