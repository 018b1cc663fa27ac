package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uis-entornos/comercio-api/internal/application/dto"
	"github.com/uis-entornos/comercio-api/internal/application/sales"
	"github.com/uis-entornos/comercio-api/internal/domain"
	"github.com/uis-entornos/comercio-api/internal/domain/entity"
)

// venta arma una venta persistida con fecha en la zona local.
func venta(id, sucursalID string, fecha time.Time, total string) *entity.Venta {
	return &entity.Venta{
		ID:         id,
		Fecha:      fecha,
		Total:      decimal.RequireFromString(total),
		SucursalID: sucursalID,
		EmpleadoID: empleadoID,
		ClienteID:  clienteID,
		Detalles: []entity.DetalleVenta{
			{
				ProductoID:     "prod-1",
				ProductoNombre: "Café molido",
				Cantidad:       1,
				PrecioUnitario: decimal.RequireFromString(total),
				Subtotal:       decimal.RequireFromString(total),
			},
		},
	}
}

func dia(anio int, mes time.Month, d int) time.Time {
	return time.Date(anio, mes, d, 12, 0, 0, 0, time.Local)
}

func TestListarTodas_ConservaElOrdenDelAlmacen(t *testing.T) {
	repo := newFakeVentaRepo(
		venta("v-1", "suc-1", dia(2026, time.March, 1), "10.00"),
		venta("v-2", "suc-2", dia(2026, time.March, 2), "20.00"),
		venta("v-3", "suc-1", dia(2026, time.March, 3), "30.00"),
	)
	uc := sales.NewConsultaVentasUseCase(repo)

	out, err := uc.ListarTodas()
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "v-1", out[0].ID)
	assert.Equal(t, "v-2", out[1].ID)
	assert.Equal(t, "v-3", out[2].ID)
}

func TestListarDetalles_VentaExistente(t *testing.T) {
	repo := newFakeVentaRepo(venta("v-1", "suc-1", dia(2026, time.March, 1), "10.00"))
	uc := sales.NewConsultaVentasUseCase(repo)

	out, err := uc.ListarDetalles("v-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "prod-1", out[0].ProductoID)
	assert.Equal(t, "Café molido", out[0].ProductoNombre)
	assert.True(t, out[0].Subtotal.Equal(decimal.RequireFromString("10.00")))
}

// Una venta desconocida produce lista vacía, no error.
func TestListarDetalles_VentaDesconocida_ListaVacia(t *testing.T) {
	uc := sales.NewConsultaVentasUseCase(newFakeVentaRepo())

	out, err := uc.ListarDetalles("no-existe")
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFiltrar_PorSucursal(t *testing.T) {
	repo := newFakeVentaRepo(
		venta("v-1", "suc-1", dia(2026, time.March, 1), "10.00"),
		venta("v-2", "suc-2", dia(2026, time.March, 2), "20.00"),
		venta("v-3", "suc-1", dia(2026, time.March, 3), "30.00"),
	)
	uc := sales.NewConsultaVentasUseCase(repo)

	out, err := uc.Filtrar(dto.FiltrarVentasRequest{SucursalID: "suc-1"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "v-1", out[0].ID, "el filtro conserva el orden relativo")
	assert.Equal(t, "v-3", out[1].ID)
}

// Las cotas de fecha son inclusivas por día calendario.
func TestFiltrar_PorRangoDeFechas_CotasInclusivas(t *testing.T) {
	repo := newFakeVentaRepo(
		venta("v-1", "suc-1", dia(2026, time.March, 1), "10.00"),
		venta("v-2", "suc-1", dia(2026, time.March, 2), "20.00"),
		venta("v-3", "suc-1", dia(2026, time.March, 3), "30.00"),
		venta("v-4", "suc-1", dia(2026, time.March, 4), "40.00"),
	)
	uc := sales.NewConsultaVentasUseCase(repo)

	out, err := uc.Filtrar(dto.FiltrarVentasRequest{
		FechaInicio: "2026-03-02",
		FechaFin:    "2026-03-03",
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "v-2", out[0].ID)
	assert.Equal(t, "v-3", out[1].ID)
}

func TestFiltrar_SucursalYFechasCombinadas(t *testing.T) {
	repo := newFakeVentaRepo(
		venta("v-1", "suc-1", dia(2026, time.March, 1), "10.00"),
		venta("v-2", "suc-2", dia(2026, time.March, 2), "20.00"),
		venta("v-3", "suc-1", dia(2026, time.March, 2), "30.00"),
		venta("v-4", "suc-1", dia(2026, time.March, 5), "40.00"),
	)
	uc := sales.NewConsultaVentasUseCase(repo)

	out, err := uc.Filtrar(dto.FiltrarVentasRequest{
		SucursalID:  "suc-1",
		FechaInicio: "2026-03-02",
		FechaFin:    "2026-03-04",
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "v-3", out[0].ID)
}

// Sin criterios, el filtro equivale al listado completo.
func TestFiltrar_SinCriterios_RetornaTodas(t *testing.T) {
	repo := newFakeVentaRepo(
		venta("v-1", "suc-1", dia(2026, time.March, 1), "10.00"),
		venta("v-2", "suc-2", dia(2026, time.March, 2), "20.00"),
	)
	uc := sales.NewConsultaVentasUseCase(repo)

	out, err := uc.Filtrar(dto.FiltrarVentasRequest{})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestFiltrar_SinCoincidencias_ListaVacia(t *testing.T) {
	repo := newFakeVentaRepo(venta("v-1", "suc-1", dia(2026, time.March, 1), "10.00"))
	uc := sales.NewConsultaVentasUseCase(repo)

	out, err := uc.Filtrar(dto.FiltrarVentasRequest{SucursalID: "suc-99"})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFiltrar_FechaMalformada_ErrInvalidInput(t *testing.T) {
	uc := sales.NewConsultaVentasUseCase(newFakeVentaRepo())

	_, err := uc.Filtrar(dto.FiltrarVentasRequest{FechaInicio: "01/03/2026"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.Filtrar(dto.FiltrarVentasRequest{FechaFin: "no-es-fecha"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// Sin ventas hoy, el total del día es cero, no un error.
func TestVentasDeHoy_SinVentas_TotalCero(t *testing.T) {
	uc := sales.NewConsultaVentasUseCase(newFakeVentaRepo())

	out, err := uc.VentasDeHoy(context.Background())
	require.NoError(t, err)
	assert.True(t, out.Total.IsZero(), "sin ventas el total es cero")
	assert.Equal(t, time.Now().Format("2006-01-02"), out.Fecha)
}

// El total del día suma solo las ventas de hoy: las de ayer quedan fuera.
func TestVentasDeHoy_SumaSoloLasDeHoy(t *testing.T) {
	ahora := time.Now()
	repo := newFakeVentaRepo(
		venta("v-hoy-1", "suc-1", ahora, "10.50"),
		venta("v-hoy-2", "suc-2", ahora, "20.25"),
		venta("v-ayer", "suc-1", ahora.AddDate(0, 0, -1), "99.99"),
	)
	uc := sales.NewConsultaVentasUseCase(repo)

	out, err := uc.VentasDeHoy(context.Background())
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("30.75")),
		"el total de hoy debe ser 30.75, fue %s", out.Total)
}
