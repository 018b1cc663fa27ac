package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uis-entornos/comercio-api/internal/application/dto"
	"github.com/uis-entornos/comercio-api/internal/domain"
	"github.com/uis-entornos/comercio-api/internal/domain/entity"
	"github.com/uis-entornos/comercio-api/internal/domain/repository"
)

// ProductoUseCase CRUD de productos. La sucursal es obligatoria y se
// resuelve en cada escritura; precio y stock no admiten negativos.
type ProductoUseCase struct {
	repo         repository.ProductoRepository
	sucursalRepo repository.SucursalRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, sucursalRepo repository.SucursalRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, sucursalRepo: sucursalRepo}
}

// Create persiste un producto nuevo asociado a su sucursal.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.SucursalID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Precio.LessThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	sucursal, err := uc.sucursalRepo.GetByID(in.SucursalID)
	if err != nil {
		return nil, err
	}
	if sucursal == nil {
		return nil, domain.NewNotFound(domain.KindSucursal, in.SucursalID)
	}

	now := time.Now()
	p := &entity.Producto{
		ID:         uuid.New().String(),
		Nombre:     in.Nombre,
		Precio:     in.Precio,
		Stock:      in.Stock,
		SucursalID: sucursal.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return uc.toResponse(p, sucursal.Nombre), nil
}

// GetByID retorna (nil, nil) si el producto no existe.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	return uc.toResponse(p, uc.nombreSucursal(p.SucursalID)), nil
}

// List retorna los productos, opcionalmente filtrados por sucursal.
func (uc *ProductoUseCase) List(sucursalID string) ([]dto.ProductoResponse, error) {
	var items []*entity.Producto
	if sucursalID != "" {
		sucursal, err := uc.sucursalRepo.GetByID(sucursalID)
		if err != nil {
			return nil, err
		}
		if sucursal == nil {
			return nil, domain.NewNotFound(domain.KindSucursal, sucursalID)
		}
		items, err = uc.repo.ListBySucursal(sucursalID)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		items, err = uc.repo.List()
		if err != nil {
			return nil, err
		}
	}
	out := make([]dto.ProductoResponse, 0, len(items))
	for _, p := range items {
		out = append(out, *uc.toResponse(p, uc.nombreSucursal(p.SucursalID)))
	}
	return out, nil
}

// Update actualiza un producto existente. Retorna (nil, nil) si no existe.
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.SucursalID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Precio.LessThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	sucursal, err := uc.sucursalRepo.GetByID(in.SucursalID)
	if err != nil {
		return nil, err
	}
	if sucursal == nil {
		return nil, domain.NewNotFound(domain.KindSucursal, in.SucursalID)
	}

	p.Nombre = in.Nombre
	p.Precio = in.Precio
	p.Stock = in.Stock
	p.SucursalID = sucursal.ID
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return uc.toResponse(p, sucursal.Nombre), nil
}

// Delete elimina un producto por id.
func (uc *ProductoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *ProductoUseCase) nombreSucursal(sucursalID string) string {
	s, _ := uc.sucursalRepo.GetByID(sucursalID)
	if s == nil {
		return ""
	}
	return s.Nombre
}

func (uc *ProductoUseCase) toResponse(p *entity.Producto, sucursalNombre string) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:             p.ID,
		Nombre:         p.Nombre,
		Precio:         p.Precio,
		Stock:          p.Stock,
		SucursalID:     p.SucursalID,
		SucursalNombre: sucursalNombre,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
