package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta es el agregado inmutable de una transacción completada.
// Se crea exactamente una vez; nunca se actualiza ni se elimina.
// Las referencias a cliente/empleado/sucursal son ids explícitos que se
// resuelven con lookups, nunca punteros a objetos vivos.
type Venta struct {
	ID         string
	Fecha      time.Time
	Total      decimal.Decimal // suma exacta de los subtotales de los detalles
	SucursalID string
	EmpleadoID string
	ClienteID  string
	Detalles   []DetalleVenta // embebidos, en el orden de la solicitud
}

// DetalleVenta es una línea de la venta. Los valores se copian al momento
// de la venta: cambios posteriores de precio del producto no la afectan.
type DetalleVenta struct {
	ProductoID     string          `json:"producto_id"`
	ProductoNombre string          `json:"producto_nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"` // precio unitario × cantidad
}
