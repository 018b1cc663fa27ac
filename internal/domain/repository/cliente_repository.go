package repository

import "github.com/uis-entornos/comercio-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	List() ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
}
