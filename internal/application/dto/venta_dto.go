package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrarVentaRequest entrada para registrar una venta.
type RegistrarVentaRequest struct {
	ClienteID  string              `json:"clienteId"`
	EmpleadoID string              `json:"empleadoId"`
	SucursalID string              `json:"sucursalId"`
	Items      []VentaItemRequest  `json:"items"`
}

// VentaItemRequest una línea de la solicitud de venta.
type VentaItemRequest struct {
	ProductoID string `json:"productoId"`
	Cantidad   int    `json:"cantidad"`
}

// DetalleVentaResponse una línea del agregado persistido.
type DetalleVentaResponse struct {
	ProductoID     string          `json:"productoId"`
	ProductoNombre string          `json:"productoNombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// VentaResponse salida de una venta registrada o consultada.
type VentaResponse struct {
	ID         string                 `json:"id"`
	Fecha      time.Time              `json:"fecha"`
	Total      decimal.Decimal        `json:"total"`
	SucursalID string                 `json:"sucursalId"`
	EmpleadoID string                 `json:"empleadoId"`
	ClienteID  string                 `json:"clienteId"`
	Detalles   []DetalleVentaResponse `json:"detalles"`
}

// FiltrarVentasRequest parámetros opcionales del filtro de ventas.
// Las fechas van en formato 2006-01-02 y comparan por día calendario.
type FiltrarVentasRequest struct {
	SucursalID  string `query:"sucursalId"`
	FechaInicio string `query:"fechaInicio"`
	FechaFin    string `query:"fechaFin"`
}

// VentasHoyResponse total facturado en el día calendario actual.
type VentasHoyResponse struct {
	Fecha string          `json:"fecha"`
	Total decimal.Decimal `json:"total"`
}
