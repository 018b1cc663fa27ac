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

var _ repository.EmpleadoRepository = (*EmpleadoRepo)(nil)

// EmpleadoRepo implementación de EmpleadoRepository sobre PostgreSQL.
// sucursal_id es NULLable: roles distintos de EMPLOYEE pueden no tener sucursal.
type EmpleadoRepo struct {
	q Querier
}

// NewEmpleadoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmpleadoRepository(q Querier) *EmpleadoRepo {
	return &EmpleadoRepo{q: q}
}

const empleadoColumns = `id, nombre, usuario, cargo, salario, email, password_hash, role, COALESCE(sucursal_id, ''), created_at, updated_at`

func scanEmpleado(row pgx.Row) (*entity.Empleado, error) {
	var e entity.Empleado
	err := row.Scan(
		&e.ID, &e.Nombre, &e.Usuario, &e.Cargo, &e.Salario, &e.Email,
		&e.PasswordHash, &e.Role, &e.SucursalID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// nullableID convierte "" a NULL para la columna sucursal_id.
func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}

// Create persiste un empleado nuevo.
func (r *EmpleadoRepo) Create(e *entity.Empleado) error {
	query := `
		INSERT INTO empleados (id, nombre, usuario, cargo, salario, email, password_hash, role, sucursal_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Nombre, e.Usuario, e.Cargo, e.Salario, e.Email,
		e.PasswordHash, e.Role, nullableID(e.SucursalID), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empleado: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por id. Retorna (nil, nil) si no existe.
func (r *EmpleadoRepo) GetByID(id string) (*entity.Empleado, error) {
	query := `SELECT ` + empleadoColumns + ` FROM empleados WHERE id = $1`
	e, err := scanEmpleado(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado: %w", err)
	}
	return e, nil
}

// FindByEmail busca un empleado por email. Retorna (nil, nil) si no existe.
func (r *EmpleadoRepo) FindByEmail(email string) (*entity.Empleado, error) {
	query := `SELECT ` + empleadoColumns + ` FROM empleados WHERE email = $1`
	e, err := scanEmpleado(r.q.QueryRow(context.Background(), query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find empleado by email: %w", err)
	}
	return e, nil
}

// FindByUsuario busca un empleado por su login. Retorna (nil, nil) si no existe.
func (r *EmpleadoRepo) FindByUsuario(usuario string) (*entity.Empleado, error) {
	query := `SELECT ` + empleadoColumns + ` FROM empleados WHERE usuario = $1`
	e, err := scanEmpleado(r.q.QueryRow(context.Background(), query, usuario))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find empleado by usuario: %w", err)
	}
	return e, nil
}

// List retorna todos los empleados.
func (r *EmpleadoRepo) List() ([]*entity.Empleado, error) {
	query := `SELECT ` + empleadoColumns + ` FROM empleados ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list empleados: %w", err)
	}
	defer rows.Close()

	var out []*entity.Empleado
	for rows.Next() {
		e, err := scanEmpleado(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empleado: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Update actualiza un empleado existente, incluido el hash de la credencial.
func (r *EmpleadoRepo) Update(e *entity.Empleado) error {
	query := `
		UPDATE empleados SET nombre = $2, usuario = $3, cargo = $4, salario = $5,
			email = $6, password_hash = $7, role = $8, sucursal_id = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Nombre, e.Usuario, e.Cargo, e.Salario, e.Email,
		e.PasswordHash, e.Role, nullableID(e.SucursalID), e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update empleado: %w", err)
	}
	return nil
}

// Delete elimina un empleado por id.
func (r *EmpleadoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM empleados WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empleado: %w", err)
	}
	return nil
}
