package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/uis-entornos/comercio-api/internal/application/dto"
	"github.com/uis-entornos/comercio-api/internal/domain"
	"github.com/uis-entornos/comercio-api/internal/domain/entity"
	"github.com/uis-entornos/comercio-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// EmpleadoUseCase CRUD de empleados. La credencial se persiste como hash
// bcrypt y nunca sale en las respuestas.
// Invariante: role EMPLOYEE exige sucursal; ADMIN y MANAGER pueden omitirla.
type EmpleadoUseCase struct {
	repo         repository.EmpleadoRepository
	sucursalRepo repository.SucursalRepository
}

// NewEmpleadoUseCase construye el caso de uso.
func NewEmpleadoUseCase(repo repository.EmpleadoRepository, sucursalRepo repository.SucursalRepository) *EmpleadoUseCase {
	return &EmpleadoUseCase{repo: repo, sucursalRepo: sucursalRepo}
}

func rolValido(role string) bool {
	switch role {
	case entity.RoleEmployee, entity.RoleAdmin, entity.RoleManager:
		return true
	}
	return false
}

// validarSucursal aplica el invariante rol/sucursal y resuelve la referencia.
func (uc *EmpleadoUseCase) validarSucursal(role, sucursalID string) error {
	if role == entity.RoleEmployee && sucursalID == "" {
		return domain.ErrInvalidInput
	}
	if sucursalID == "" {
		return nil
	}
	s, err := uc.sucursalRepo.GetByID(sucursalID)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.NewNotFound(domain.KindSucursal, sucursalID)
	}
	return nil
}

// Create persiste un empleado nuevo con la credencial hasheada.
func (uc *EmpleadoUseCase) Create(in dto.CreateEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	if in.Nombre == "" || in.Usuario == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	if !rolValido(role) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validarSucursal(role, in.SucursalID); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	e := &entity.Empleado{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Usuario:      in.Usuario,
		Cargo:        in.Cargo,
		Salario:      in.Salario,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		SucursalID:   in.SucursalID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toEmpleadoResponse(e), nil
}

// GetByID retorna (nil, nil) si el empleado no existe.
func (uc *EmpleadoUseCase) GetByID(id string) (*dto.EmpleadoResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil || e == nil {
		return nil, err
	}
	return toEmpleadoResponse(e), nil
}

// List retorna todos los empleados.
func (uc *EmpleadoUseCase) List() ([]dto.EmpleadoResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmpleadoResponse, 0, len(items))
	for _, e := range items {
		out = append(out, *toEmpleadoResponse(e))
	}
	return out, nil
}

// Update actualiza un empleado existente. Password vacío conserva el hash
// actual. Retorna (nil, nil) si no existe.
func (uc *EmpleadoUseCase) Update(id string, in dto.UpdateEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil || e == nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = e.Role
	}
	if !rolValido(role) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validarSucursal(role, in.SucursalID); err != nil {
		return nil, err
	}

	e.Nombre = in.Nombre
	e.Usuario = in.Usuario
	e.Cargo = in.Cargo
	e.Salario = in.Salario
	e.Email = in.Email
	e.Role = role
	e.SucursalID = in.SucursalID
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		e.PasswordHash = string(hash)
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toEmpleadoResponse(e), nil
}

// Delete elimina un empleado por id.
func (uc *EmpleadoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toEmpleadoResponse(e *entity.Empleado) *dto.EmpleadoResponse {
	return &dto.EmpleadoResponse{
		ID:         e.ID,
		Nombre:     e.Nombre,
		Usuario:    e.Usuario,
		Cargo:      e.Cargo,
		Salario:    e.Salario,
		Email:      e.Email,
		Role:       e.Role,
		SucursalID: e.SucursalID,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
