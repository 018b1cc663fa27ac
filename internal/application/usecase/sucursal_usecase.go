package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/uis-entornos/comercio-api/internal/application/dto"
	"github.com/uis-entornos/comercio-api/internal/domain/entity"
	"github.com/uis-entornos/comercio-api/internal/domain/repository"
)

// SucursalUseCase CRUD de sucursales.
type SucursalUseCase struct {
	repo repository.SucursalRepository
}

// NewSucursalUseCase construye el caso de uso.
func NewSucursalUseCase(repo repository.SucursalRepository) *SucursalUseCase {
	return &SucursalUseCase{repo: repo}
}

// Create persiste una sucursal nueva.
func (uc *SucursalUseCase) Create(in dto.CreateSucursalRequest) (*dto.SucursalResponse, error) {
	now := time.Now()
	s := &entity.Sucursal{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toSucursalResponse(s), nil
}

// GetByID retorna (nil, nil) si la sucursal no existe.
func (uc *SucursalUseCase) GetByID(id string) (*dto.SucursalResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil || s == nil {
		return nil, err
	}
	return toSucursalResponse(s), nil
}

// List retorna todas las sucursales.
func (uc *SucursalUseCase) List() ([]dto.SucursalResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SucursalResponse, 0, len(items))
	for _, s := range items {
		out = append(out, *toSucursalResponse(s))
	}
	return out, nil
}

// Update actualiza una sucursal existente. Retorna (nil, nil) si no existe.
func (uc *SucursalUseCase) Update(id string, in dto.UpdateSucursalRequest) (*dto.SucursalResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil || s == nil {
		return nil, err
	}
	s.Nombre = in.Nombre
	s.Direccion = in.Direccion
	s.Telefono = in.Telefono
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSucursalResponse(s), nil
}

// Delete elimina una sucursal por id.
func (uc *SucursalUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSucursalResponse(s *entity.Sucursal) *dto.SucursalResponse {
	return &dto.SucursalResponse{
		ID:        s.ID,
		Nombre:    s.Nombre,
		Direccion: s.Direccion,
		Telefono:  s.Telefono,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
