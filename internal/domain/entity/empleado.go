package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para Empleado.
const (
	RoleEmployee = "EMPLOYEE"
	RoleAdmin    = "ADMIN"
	RoleManager  = "MANAGER"
)

// Empleado representa un usuario del sistema asociado (según rol) a una sucursal.
// Invariante: si Role == EMPLOYEE, SucursalID es obligatorio; otros roles pueden omitirlo.
type Empleado struct {
	ID           string
	Nombre       string
	Usuario      string
	Cargo        string
	Salario      decimal.Decimal
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Role         string // EMPLOYEE, ADMIN, MANAGER
	SucursalID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
