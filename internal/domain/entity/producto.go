package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un ítem vendible con stock propio.
// SucursalID es obligatorio: todo producto pertenece a una sucursal.
// Invariante: Stock nunca es negativo; las ventas lo decrementan con
// una actualización condicional (ver ProductoRepository.DecrementStock).
type Producto struct {
	ID         string
	Nombre     string
	Precio     decimal.Decimal // precio de venta unitario, >= 0
	Stock      int             // unidades disponibles, >= 0
	SucursalID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
