package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/uis-entornos/comercio-api/internal/domain"
	"github.com/uis-entornos/comercio-api/internal/domain/entity"
	"github.com/uis-entornos/comercio-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id, nombre, precio, stock, sucursal_id, created_at, updated_at`

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(&p.ID, &p.Nombre, &p.Precio, &p.Stock, &p.SucursalID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un producto nuevo.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (id, nombre, precio, stock, sucursal_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Precio, p.Stock, p.SucursalID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id. Retorna (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	p, err := scanProducto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// List retorna todos los productos.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos ORDER BY nombre`
	return r.queryProductos(query)
}

// ListBySucursal retorna los productos de una sucursal.
func (r *ProductoRepo) ListBySucursal(sucursalID string) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE sucursal_id = $1 ORDER BY nombre`
	return r.queryProductos(query, sucursalID)
}

func (r *ProductoRepo) queryProductos(query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update actualiza un producto existente (incluido stock: reposiciones vía CRUD).
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, precio = $3, stock = $4, sucursal_id = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Precio, p.Stock, p.SucursalID, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Delete elimina un producto por id.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// DecrementStock descuenta cantidad unidades en una sola sentencia condicional:
// la fila solo se actualiza si el stock alcanza, así que dos ventas
// concurrentes sobre el mismo producto no pueden sobrevender.
func (r *ProductoRepo) DecrementStock(id string, cantidad int) (*entity.Producto, error) {
	query := `
		UPDATE productos SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2
		RETURNING ` + productoColumns
	p, err := scanProducto(r.q.QueryRow(context.Background(), query, id, cantidad))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("decrement stock: %w", err)
	}

	// Sin fila actualizada: distinguir producto inexistente de stock corto.
	actual, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if actual == nil {
		return nil, domain.NewNotFound(domain.KindProducto, id)
	}
	return nil, &domain.InsufficientStockError{
		ProductoID:     actual.ID,
		ProductoNombre: actual.Nombre,
		Solicitado:     cantidad,
		Disponible:     actual.Stock,
	}
}
