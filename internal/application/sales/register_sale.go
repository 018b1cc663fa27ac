package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uis-entornos/comercio-api/internal/application/dto"
	"github.com/uis-entornos/comercio-api/internal/domain"
	"github.com/uis-entornos/comercio-api/internal/domain/entity"
	"github.com/uis-entornos/comercio-api/internal/domain/repository"
)

// RegistrarVentaUseCase arma y persiste el agregado Venta: resuelve las
// referencias, descuenta stock línea a línea y calcula el total.
//
// No hay transacción que envuelva el flujo completo: cada descuento de stock
// queda confirmado aunque una línea posterior o la persistencia final fallen.
// El descuento de cada producto sí es atómico (ver ProductoRepository.DecrementStock),
// así que dos ventas concurrentes nunca sobrevenden un mismo producto.
type RegistrarVentaUseCase struct {
	ventaRepo    repository.VentaRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
	empleadoRepo repository.EmpleadoRepository
	sucursalRepo repository.SucursalRepository
}

// NewRegistrarVentaUseCase construye el caso de uso.
func NewRegistrarVentaUseCase(
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	empleadoRepo repository.EmpleadoRepository,
	sucursalRepo repository.SucursalRepository,
) *RegistrarVentaUseCase {
	return &RegistrarVentaUseCase{
		ventaRepo:    ventaRepo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
		empleadoRepo: empleadoRepo,
		sucursalRepo: sucursalRepo,
	}
}

// Registrar valida la solicitud, descuenta stock por cada línea en orden y
// persiste la venta con el total sumado.
func (uc *RegistrarVentaUseCase) Registrar(in dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if in.ClienteID == "" || in.EmpleadoID == "" || in.SucursalID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductoID == "" || item.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.NewNotFound(domain.KindCliente, in.ClienteID)
	}

	empleado, err := uc.empleadoRepo.GetByID(in.EmpleadoID)
	if err != nil {
		return nil, err
	}
	if empleado == nil {
		return nil, domain.NewNotFound(domain.KindEmpleado, in.EmpleadoID)
	}

	sucursal, err := uc.sucursalRepo.GetByID(in.SucursalID)
	if err != nil {
		return nil, err
	}
	if sucursal == nil {
		return nil, domain.NewNotFound(domain.KindSucursal, in.SucursalID)
	}

	detalles := make([]entity.DetalleVenta, 0, len(in.Items))
	total := decimal.Zero

	for _, item := range in.Items {
		producto, err := uc.productoRepo.GetByID(item.ProductoID)
		if err != nil {
			return nil, err
		}
		if producto == nil {
			return nil, domain.NewNotFound(domain.KindProducto, item.ProductoID)
		}

		// Descuento condicional: falla la línea si el stock no alcanza,
		// contando lo ya descontado por líneas anteriores de esta misma venta.
		producto, err = uc.productoRepo.DecrementStock(item.ProductoID, item.Cantidad)
		if err != nil {
			return nil, err
		}

		subtotal := producto.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		detalles = append(detalles, entity.DetalleVenta{
			ProductoID:     producto.ID,
			ProductoNombre: producto.Nombre,
			Cantidad:       item.Cantidad,
			PrecioUnitario: producto.Precio,
			Subtotal:       subtotal,
		})
		total = total.Add(subtotal)
	}

	venta := &entity.Venta{
		ID:         uuid.New().String(),
		Fecha:      time.Now(),
		Total:      total,
		SucursalID: sucursal.ID,
		EmpleadoID: empleado.ID,
		ClienteID:  cliente.ID,
		Detalles:   detalles,
	}
	if err := uc.ventaRepo.Create(venta); err != nil {
		// Los descuentos de stock ya confirmados no se revierten.
		return nil, err
	}

	return toVentaResponse(venta), nil
}

func toVentaResponse(v *entity.Venta) *dto.VentaResponse {
	resp := &dto.VentaResponse{
		ID:         v.ID,
		Fecha:      v.Fecha,
		Total:      v.Total,
		SucursalID: v.SucursalID,
		EmpleadoID: v.EmpleadoID,
		ClienteID:  v.ClienteID,
		Detalles:   make([]dto.DetalleVentaResponse, 0, len(v.Detalles)),
	}
	for _, d := range v.Detalles {
		resp.Detalles = append(resp.Detalles, dto.DetalleVentaResponse{
			ProductoID:     d.ProductoID,
			ProductoNombre: d.ProductoNombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}
	return resp
}
