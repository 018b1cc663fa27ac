package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmpleadoRequest entrada para crear un empleado.
// Password llega en claro y se persiste como hash bcrypt.
type CreateEmpleadoRequest struct {
	Nombre     string          `json:"nombre"`
	Usuario    string          `json:"usuario"`
	Cargo      string          `json:"cargo"`
	Salario    decimal.Decimal `json:"salario"`
	Email      string          `json:"email"`
	Password   string          `json:"password"`
	Role       string          `json:"role"`
	SucursalID string          `json:"sucursalId"`
}

// UpdateEmpleadoRequest entrada para actualizar un empleado.
// Password vacío conserva la credencial actual.
type UpdateEmpleadoRequest struct {
	Nombre     string          `json:"nombre"`
	Usuario    string          `json:"usuario"`
	Cargo      string          `json:"cargo"`
	Salario    decimal.Decimal `json:"salario"`
	Email      string          `json:"email"`
	Password   string          `json:"password"`
	Role       string          `json:"role"`
	SucursalID string          `json:"sucursalId"`
}

// EmpleadoResponse salida de un empleado. Nunca incluye la credencial.
type EmpleadoResponse struct {
	ID         string          `json:"id"`
	Nombre     string          `json:"nombre"`
	Usuario    string          `json:"usuario"`
	Cargo      string          `json:"cargo"`
	Salario    decimal.Decimal `json:"salario"`
	Email      string          `json:"email"`
	Role       string          `json:"role"`
	SucursalID string          `json:"sucursalId,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
