package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/uis-entornos/comercio-api/internal/application/dto"
	"github.com/uis-entornos/comercio-api/internal/domain/entity"
	"github.com/uis-entornos/comercio-api/internal/domain/repository"
)

// ClienteUseCase CRUD de clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create persiste un cliente nuevo.
func (uc *ClienteUseCase) Create(in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	now := time.Now()
	c := &entity.Cliente{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Email:     in.Email,
		Telefono:  in.Telefono,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// GetByID retorna (nil, nil) si el cliente no existe.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil || c == nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// List retorna todos los clientes.
func (uc *ClienteUseCase) List() ([]dto.ClienteResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(items))
	for _, c := range items {
		out = append(out, *toClienteResponse(c))
	}
	return out, nil
}

// Update actualiza un cliente existente. Retorna (nil, nil) si no existe.
func (uc *ClienteUseCase) Update(id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil || c == nil {
		return nil, err
	}
	c.Nombre = in.Nombre
	c.Email = in.Email
	c.Telefono = in.Telefono
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// Delete elimina un cliente por id.
func (uc *ClienteUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Email:     c.Email,
		Telefono:  c.Telefono,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
