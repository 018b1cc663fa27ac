package repository

import "github.com/uis-entornos/comercio-api/internal/domain/entity"

// SucursalRepository define el puerto de persistencia para Sucursal (DIP).
type SucursalRepository interface {
	Create(sucursal *entity.Sucursal) error
	GetByID(id string) (*entity.Sucursal, error)
	List() ([]*entity.Sucursal, error)
	Update(sucursal *entity.Sucursal) error
	Delete(id string) error
}
