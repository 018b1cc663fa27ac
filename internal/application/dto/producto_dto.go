package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto. SucursalID es obligatorio.
type CreateProductoRequest struct {
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Stock      int             `json:"stock"`
	SucursalID string          `json:"sucursalId"`
}

// UpdateProductoRequest entrada para actualizar un producto.
type UpdateProductoRequest struct {
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Stock      int             `json:"stock"`
	SucursalID string          `json:"sucursalId"`
}

// ProductoResponse salida de un producto, con el nombre de la sucursal denormalizado.
type ProductoResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Precio         decimal.Decimal `json:"precio"`
	Stock          int             `json:"stock"`
	SucursalID     string          `json:"sucursalId"`
	SucursalNombre string          `json:"sucursalNombre,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
