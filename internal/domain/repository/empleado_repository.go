package repository

import "github.com/uis-entornos/comercio-api/internal/domain/entity"

// EmpleadoRepository define el puerto de persistencia para Empleado.
type EmpleadoRepository interface {
	Create(empleado *entity.Empleado) error
	GetByID(id string) (*entity.Empleado, error)
	// FindByEmail y FindByUsuario retornan (nil, nil) si no existe.
	FindByEmail(email string) (*entity.Empleado, error)
	FindByUsuario(usuario string) (*entity.Empleado, error)
	List() ([]*entity.Empleado, error)
	Update(empleado *entity.Empleado) error
	Delete(id string) error
}
