package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/uis-entornos/comercio-api/internal/domain/entity"
	"github.com/uis-entornos/comercio-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository sobre PostgreSQL.
// Los detalles se embeben como JSONB en la fila de la venta, conservando la
// semántica de agregado-documento: la venta se lee y escribe completa.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste la venta completa con sus detalles embebidos.
func (r *VentaRepo) Create(v *entity.Venta) error {
	detalles, err := json.Marshal(v.Detalles)
	if err != nil {
		return fmt.Errorf("marshal detalles: %w", err)
	}
	query := `
		INSERT INTO ventas (id, fecha, total, sucursal_id, empleado_id, cliente_id, detalles)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(context.Background(), query,
		v.ID, v.Fecha, v.Total, v.SucursalID, v.EmpleadoID, v.ClienteID, detalles,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

func scanVenta(row pgx.Row) (*entity.Venta, error) {
	var (
		v        entity.Venta
		detalles []byte
	)
	err := row.Scan(&v.ID, &v.Fecha, &v.Total, &v.SucursalID, &v.EmpleadoID, &v.ClienteID, &detalles)
	if err != nil {
		return nil, err
	}
	if len(detalles) > 0 {
		if err := json.Unmarshal(detalles, &v.Detalles); err != nil {
			return nil, fmt.Errorf("unmarshal detalles: %w", err)
		}
	}
	return &v, nil
}

const ventaColumns = `id, fecha, total, sucursal_id, empleado_id, cliente_id, detalles`

// GetByID obtiene una venta por id. Retorna (nil, nil) si no existe.
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas WHERE id = $1`
	v, err := scanVenta(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return v, nil
}

// List retorna todas las ventas, más recientes primero.
func (r *VentaRepo) List() ([]*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()

	var out []*entity.Venta
	for rows.Next() {
		v, err := scanVenta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// SumTotalByFechaRange suma los totales de las ventas con fecha en [desde, hasta).
// COALESCE devuelve cero cuando no hay ventas en el rango.
func (r *VentaRepo) SumTotalByFechaRange(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM ventas
		WHERE fecha >= $1 AND fecha < $2`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, desde, hasta).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum ventas por rango: %w", err)
	}
	return total, nil
}
