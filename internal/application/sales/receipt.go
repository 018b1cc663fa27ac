package sales

import (
	"context"

	"github.com/uis-entornos/comercio-api/internal/domain"
	"github.com/uis-entornos/comercio-api/internal/domain/entity"
	"github.com/uis-entornos/comercio-api/internal/domain/repository"
)

// ReciboGenerator puerto de renderizado del recibo de una venta (PDF).
type ReciboGenerator interface {
	GenerateReciboPDF(
		ctx context.Context,
		venta *entity.Venta,
		sucursal *entity.Sucursal,
		cliente *entity.Cliente,
		empleado *entity.Empleado,
	) ([]byte, error)
}

// ReciboUseCase arma el recibo imprimible de una venta: resuelve las
// referencias del agregado y delega el renderizado al generador.
type ReciboUseCase struct {
	ventaRepo    repository.VentaRepository
	sucursalRepo repository.SucursalRepository
	clienteRepo  repository.ClienteRepository
	empleadoRepo repository.EmpleadoRepository
	generator    ReciboGenerator
}

// NewReciboUseCase construye el caso de uso.
func NewReciboUseCase(
	ventaRepo repository.VentaRepository,
	sucursalRepo repository.SucursalRepository,
	clienteRepo repository.ClienteRepository,
	empleadoRepo repository.EmpleadoRepository,
	generator ReciboGenerator,
) *ReciboUseCase {
	return &ReciboUseCase{
		ventaRepo:    ventaRepo,
		sucursalRepo: sucursalRepo,
		clienteRepo:  clienteRepo,
		empleadoRepo: empleadoRepo,
		generator:    generator,
	}
}

// Generar produce los bytes del PDF del recibo de la venta indicada.
// Las referencias que ya no existan se renderizan vacías: el recibo de una
// venta histórica no depende de que el cliente o el empleado sigan activos.
func (uc *ReciboUseCase) Generar(ctx context.Context, ventaID string) ([]byte, error) {
	venta, err := uc.ventaRepo.GetByID(ventaID)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.NewNotFound(domain.KindVenta, ventaID)
	}

	sucursal, _ := uc.sucursalRepo.GetByID(venta.SucursalID)
	if sucursal == nil {
		sucursal = &entity.Sucursal{ID: venta.SucursalID}
	}
	cliente, _ := uc.clienteRepo.GetByID(venta.ClienteID)
	if cliente == nil {
		cliente = &entity.Cliente{ID: venta.ClienteID}
	}
	empleado, _ := uc.empleadoRepo.GetByID(venta.EmpleadoID)
	if empleado == nil {
		empleado = &entity.Empleado{ID: venta.EmpleadoID}
	}

	return uc.generator.GenerateReciboPDF(ctx, venta, sucursal, cliente, empleado)
}
