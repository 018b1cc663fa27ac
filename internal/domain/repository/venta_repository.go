package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uis-entornos/comercio-api/internal/domain/entity"
)

// VentaRepository define el puerto de persistencia para Venta.
// Las ventas son write-once: no hay Update ni Delete.
type VentaRepository interface {
	Create(venta *entity.Venta) error
	// GetByID retorna (nil, nil) si la venta no existe.
	GetByID(id string) (*entity.Venta, error)
	List() ([]*entity.Venta, error)

	// SumTotalByFechaRange suma los totales de las ventas con fecha en
	// [desde, hasta). Retorna cero si no hay ventas en el rango.
	SumTotalByFechaRange(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)
}
