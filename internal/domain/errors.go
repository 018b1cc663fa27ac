package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// Nombres de entidad usados en mensajes de error.
const (
	KindSucursal = "sucursal"
	KindEmpleado = "empleado"
	KindCliente  = "cliente"
	KindProducto = "producto"
	KindVenta    = "venta"
)

// NotFoundError identifica qué entidad y qué id no pudieron resolverse.
// errors.Is(err, ErrNotFound) retorna true.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s no encontrado", e.Kind)
	}
	return fmt.Sprintf("%s no encontrado: %s", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound construye un NotFoundError para la entidad indicada.
func NewNotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// InsufficientStockError reporta una venta que excede el stock disponible
// al momento de procesar la línea. errors.Is(err, ErrInsufficientStock) retorna true.
type InsufficientStockError struct {
	ProductoID     string
	ProductoNombre string
	Solicitado     int
	Disponible     int
}

func (e *InsufficientStockError) Error() string {
	nombre := e.ProductoNombre
	if nombre == "" {
		nombre = e.ProductoID
	}
	return fmt.Sprintf("stock insuficiente para producto %s: solicitado %d, disponible %d",
		nombre, e.Solicitado, e.Disponible)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
