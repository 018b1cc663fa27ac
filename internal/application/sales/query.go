package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/uis-entornos/comercio-api/internal/application/dto"
	"github.com/uis-entornos/comercio-api/internal/domain"
	"github.com/uis-entornos/comercio-api/internal/domain/repository"
)

// fechaLayout formato de las fechas del filtro (día calendario).
const fechaLayout = "2006-01-02"

// ConsultaVentasUseCase consultas de lectura sobre ventas: listado, detalles,
// filtro por sucursal/rango de fechas y total facturado del día.
type ConsultaVentasUseCase struct {
	ventaRepo repository.VentaRepository
}

// NewConsultaVentasUseCase construye el caso de uso.
func NewConsultaVentasUseCase(ventaRepo repository.VentaRepository) *ConsultaVentasUseCase {
	return &ConsultaVentasUseCase{ventaRepo: ventaRepo}
}

// ListarTodas retorna todas las ventas en el orden nativo del almacén.
func (uc *ConsultaVentasUseCase) ListarTodas() ([]dto.VentaResponse, error) {
	ventas, err := uc.ventaRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, *toVentaResponse(v))
	}
	return out, nil
}

// ListarDetalles retorna los detalles embebidos de una venta.
// Una venta desconocida produce una lista vacía, no un error.
func (uc *ConsultaVentasUseCase) ListarDetalles(ventaID string) ([]dto.DetalleVentaResponse, error) {
	venta, err := uc.ventaRepo.GetByID(ventaID)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return []dto.DetalleVentaResponse{}, nil
	}
	out := make([]dto.DetalleVentaResponse, 0, len(venta.Detalles))
	for _, d := range venta.Detalles {
		out = append(out, dto.DetalleVentaResponse{
			ProductoID:     d.ProductoID,
			ProductoNombre: d.ProductoNombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}
	return out, nil
}

// Filtrar arranca del listado completo y aplica en secuencia: igualdad de
// sucursal (se omite si está vacía), cota inferior y cota superior de fecha
// (inclusivas, por día calendario en la zona horaria local). El orden
// relativo del listado se conserva.
func (uc *ConsultaVentasUseCase) Filtrar(in dto.FiltrarVentasRequest) ([]dto.VentaResponse, error) {
	ventas, err := uc.ventaRepo.List()
	if err != nil {
		return nil, err
	}

	if in.SucursalID != "" {
		filtradas := ventas[:0:0]
		for _, v := range ventas {
			if v.SucursalID == in.SucursalID {
				filtradas = append(filtradas, v)
			}
		}
		ventas = filtradas
	}

	if in.FechaInicio != "" {
		inicio, err := time.ParseInLocation(fechaLayout, in.FechaInicio, time.Local)
		if err != nil {
			return nil, fmt.Errorf("fechaInicio inválida: %w", domain.ErrInvalidInput)
		}
		filtradas := ventas[:0:0]
		for _, v := range ventas {
			if !diaCalendario(v.Fecha).Before(inicio) {
				filtradas = append(filtradas, v)
			}
		}
		ventas = filtradas
	}

	if in.FechaFin != "" {
		fin, err := time.ParseInLocation(fechaLayout, in.FechaFin, time.Local)
		if err != nil {
			return nil, fmt.Errorf("fechaFin inválida: %w", domain.ErrInvalidInput)
		}
		filtradas := ventas[:0:0]
		for _, v := range ventas {
			if !diaCalendario(v.Fecha).After(fin) {
				filtradas = append(filtradas, v)
			}
		}
		ventas = filtradas
	}

	out := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, *toVentaResponse(v))
	}
	return out, nil
}

// VentasDeHoy suma los totales de las ventas del día calendario actual
// (zona horaria del servidor). Retorna cero si no hay ventas hoy.
func (uc *ConsultaVentasUseCase) VentasDeHoy(ctx context.Context) (*dto.VentasHoyResponse, error) {
	hoy := diaCalendario(time.Now())
	manana := hoy.AddDate(0, 0, 1)

	total, err := uc.ventaRepo.SumTotalByFechaRange(ctx, hoy, manana)
	if err != nil {
		return nil, err
	}
	return &dto.VentasHoyResponse{
		Fecha: hoy.Format(fechaLayout),
		Total: total,
	}, nil
}

// diaCalendario trunca un instante al inicio de su día en la zona local.
func diaCalendario(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
