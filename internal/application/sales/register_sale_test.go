package sales_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uis-entornos/comercio-api/internal/application/dto"
	"github.com/uis-entornos/comercio-api/internal/application/sales"
	"github.com/uis-entornos/comercio-api/internal/domain"
	"github.com/uis-entornos/comercio-api/internal/domain/entity"
)

const (
	clienteID  = "cliente-1"
	empleadoID = "empleado-1"
	sucursalID = "sucursal-1"
)

// escenario arma el caso de uso con los repos en memoria y un contexto base
// válido (cliente, empleado y sucursal existentes).
func escenario(productos ...*entity.Producto) (*sales.RegistrarVentaUseCase, *fakeProductoRepo, *fakeVentaRepo) {
	productoRepo := newFakeProductoRepo(productos...)
	ventaRepo := newFakeVentaRepo()
	clienteRepo := newFakeClienteRepo(&entity.Cliente{ID: clienteID, Nombre: "Ana Pérez"})
	empleadoRepo := newFakeEmpleadoRepo(&entity.Empleado{ID: empleadoID, Nombre: "Luis Gómez", Role: entity.RoleEmployee, SucursalID: sucursalID})
	sucursalRepo := newFakeSucursalRepo(&entity.Sucursal{ID: sucursalID, Nombre: "Sucursal Centro"})

	uc := sales.NewRegistrarVentaUseCase(ventaRepo, productoRepo, clienteRepo, empleadoRepo, sucursalRepo)
	return uc, productoRepo, ventaRepo
}

func producto(id, nombre string, precio string, stock int) *entity.Producto {
	return &entity.Producto{
		ID:         id,
		Nombre:     nombre,
		Precio:     decimal.RequireFromString(precio),
		Stock:      stock,
		SucursalID: sucursalID,
	}
}

func solicitud(items ...dto.VentaItemRequest) dto.RegistrarVentaRequest {
	return dto.RegistrarVentaRequest{
		ClienteID:  clienteID,
		EmpleadoID: empleadoID,
		SucursalID: sucursalID,
		Items:      items,
	}
}

// Venta de una línea: 3 unidades de un producto con stock 10 y precio 5.00
// deja stock 7 y una venta con subtotal y total 15.00.
func TestRegistrar_UnaLinea_DescuentaStockYCalculaTotal(t *testing.T) {
	uc, productoRepo, ventaRepo := escenario(producto("prod-1", "Café molido", "5.00", 10))

	resp, err := uc.Registrar(solicitud(dto.VentaItemRequest{ProductoID: "prod-1", Cantidad: 3}))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, 7, productoRepo.stockDe("prod-1"), "el stock debe quedar en 7")
	require.Len(t, resp.Detalles, 1)
	assert.True(t, resp.Detalles[0].Subtotal.Equal(decimal.RequireFromString("15.00")),
		"subtotal debe ser 15.00, fue %s", resp.Detalles[0].Subtotal)
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("15.00")),
		"total debe ser 15.00, fue %s", resp.Total)
	assert.Equal(t, 1, ventaRepo.count(), "la venta debe quedar persistida")
	assert.NotEmpty(t, resp.ID)
	assert.False(t, resp.Fecha.IsZero())
}

// El total de una venta multi-línea es la suma exacta de los subtotales, y los
// detalles conservan el orden de la solicitud.
func TestRegistrar_MultiLinea_TotalEsSumaDeSubtotales(t *testing.T) {
	uc, productoRepo, _ := escenario(
		producto("prod-1", "Café molido", "5.00", 10),
		producto("prod-2", "Panela", "2.50", 8),
		producto("prod-3", "Chocolate", "7.99", 4),
	)

	resp, err := uc.Registrar(solicitud(
		dto.VentaItemRequest{ProductoID: "prod-1", Cantidad: 2},
		dto.VentaItemRequest{ProductoID: "prod-2", Cantidad: 4},
		dto.VentaItemRequest{ProductoID: "prod-3", Cantidad: 1},
	))
	require.NoError(t, err)
	require.Len(t, resp.Detalles, 3)

	suma := decimal.Zero
	for _, d := range resp.Detalles {
		assert.True(t, d.Subtotal.Equal(d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))),
			"cada subtotal debe ser precio por cantidad")
		suma = suma.Add(d.Subtotal)
	}
	assert.True(t, resp.Total.Equal(suma), "total %s debe igualar la suma %s", resp.Total, suma)
	// 2*5.00 + 4*2.50 + 1*7.99 = 27.99
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("27.99")))

	assert.Equal(t, "prod-1", resp.Detalles[0].ProductoID)
	assert.Equal(t, "prod-2", resp.Detalles[1].ProductoID)
	assert.Equal(t, "prod-3", resp.Detalles[2].ProductoID)

	assert.Equal(t, 8, productoRepo.stockDe("prod-1"))
	assert.Equal(t, 4, productoRepo.stockDe("prod-2"))
	assert.Equal(t, 3, productoRepo.stockDe("prod-3"))
}

// Repetir un producto en dos líneas descuenta el stock dos veces.
func TestRegistrar_ProductoRepetido_DescuentaPorCadaLinea(t *testing.T) {
	uc, productoRepo, _ := escenario(producto("prod-1", "Café molido", "5.00", 10))

	resp, err := uc.Registrar(solicitud(
		dto.VentaItemRequest{ProductoID: "prod-1", Cantidad: 3},
		dto.VentaItemRequest{ProductoID: "prod-1", Cantidad: 4},
	))
	require.NoError(t, err)

	assert.Equal(t, 3, productoRepo.stockDe("prod-1"))
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("35.00")))
}

// Stock insuficiente: solicitar 5 con stock 2 falla con el error tipado y no
// muta el stock ni persiste la venta.
func TestRegistrar_StockInsuficiente_NoMutaNada(t *testing.T) {
	uc, productoRepo, ventaRepo := escenario(producto("prod-1", "Café molido", "5.00", 2))

	resp, err := uc.Registrar(solicitud(dto.VentaItemRequest{ProductoID: "prod-1", Cantidad: 5}))
	require.Error(t, err)
	assert.Nil(t, resp)

	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "prod-1", stockErr.ProductoID)
	assert.Equal(t, 5, stockErr.Solicitado)
	assert.Equal(t, 2, stockErr.Disponible)

	assert.Equal(t, 2, productoRepo.stockDe("prod-1"), "el stock no debe cambiar")
	assert.Equal(t, 0, ventaRepo.count(), "no debe persistirse venta alguna")
}

// Fallo en la segunda línea: el descuento de la primera línea ya quedó
// confirmado y no se revierte, pero la venta no se persiste.
func TestRegistrar_FalloEnSegundaLinea_PrimerDescuentoPersiste(t *testing.T) {
	uc, productoRepo, ventaRepo := escenario(
		producto("prod-1", "Café molido", "5.00", 10),
		producto("prod-2", "Panela", "2.50", 1),
	)

	_, err := uc.Registrar(solicitud(
		dto.VentaItemRequest{ProductoID: "prod-1", Cantidad: 3},
		dto.VentaItemRequest{ProductoID: "prod-2", Cantidad: 5},
	))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	assert.Equal(t, 7, productoRepo.stockDe("prod-1"),
		"el descuento de la primera línea queda confirmado")
	assert.Equal(t, 1, productoRepo.stockDe("prod-2"),
		"el stock de la línea fallida no cambia")
	assert.Equal(t, 0, ventaRepo.count())
}

// Fallo al persistir la venta: los descuentos ya aplicados no se revierten.
func TestRegistrar_FalloAlPersistir_DescuentosNoSeRevierten(t *testing.T) {
	uc, productoRepo, ventaRepo := escenario(producto("prod-1", "Café molido", "5.00", 10))
	ventaRepo.createErr = errors.New("conexión perdida")

	_, err := uc.Registrar(solicitud(dto.VentaItemRequest{ProductoID: "prod-1", Cantidad: 3}))
	require.Error(t, err)

	assert.Equal(t, 7, productoRepo.stockDe("prod-1"),
		"el descuento queda confirmado aunque la venta no se persista")
	assert.Equal(t, 0, ventaRepo.count())
}

// Referencias inexistentes producen NotFoundError con la entidad correcta.
func TestRegistrar_ReferenciasInexistentes(t *testing.T) {
	casos := []struct {
		nombre string
		mutar  func(*dto.RegistrarVentaRequest)
		kind   string
	}{
		{"cliente desconocido", func(r *dto.RegistrarVentaRequest) { r.ClienteID = "no-existe" }, domain.KindCliente},
		{"empleado desconocido", func(r *dto.RegistrarVentaRequest) { r.EmpleadoID = "no-existe" }, domain.KindEmpleado},
		{"sucursal desconocida", func(r *dto.RegistrarVentaRequest) { r.SucursalID = "no-existe" }, domain.KindSucursal},
		{"producto desconocido", func(r *dto.RegistrarVentaRequest) {
			r.Items = []dto.VentaItemRequest{{ProductoID: "no-existe", Cantidad: 1}}
		}, domain.KindProducto},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			uc, productoRepo, ventaRepo := escenario(producto("prod-1", "Café molido", "5.00", 10))

			req := solicitud(dto.VentaItemRequest{ProductoID: "prod-1", Cantidad: 1})
			c.mutar(&req)

			_, err := uc.Registrar(req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrNotFound))

			var nfErr *domain.NotFoundError
			require.ErrorAs(t, err, &nfErr)
			assert.Equal(t, c.kind, nfErr.Kind)

			assert.Equal(t, 10, productoRepo.stockDe("prod-1"), "sin descuentos")
			assert.Equal(t, 0, ventaRepo.count())
		})
	}
}

// Producto inexistente en la segunda línea: el descuento de la primera ya
// quedó aplicado.
func TestRegistrar_ProductoInexistenteEnSegundaLinea_PrimerDescuentoPersiste(t *testing.T) {
	uc, productoRepo, ventaRepo := escenario(producto("prod-1", "Café molido", "5.00", 10))

	_, err := uc.Registrar(solicitud(
		dto.VentaItemRequest{ProductoID: "prod-1", Cantidad: 2},
		dto.VentaItemRequest{ProductoID: "no-existe", Cantidad: 1},
	))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	assert.Equal(t, 8, productoRepo.stockDe("prod-1"))
	assert.Equal(t, 0, ventaRepo.count())
}

// Solicitudes mal formadas fallan con ErrInvalidInput sin tocar los repos.
func TestRegistrar_SolicitudInvalida(t *testing.T) {
	casos := []struct {
		nombre string
		req    dto.RegistrarVentaRequest
	}{
		{"sin líneas", solicitud()},
		{"cantidad cero", solicitud(dto.VentaItemRequest{ProductoID: "prod-1", Cantidad: 0})},
		{"cantidad negativa", solicitud(dto.VentaItemRequest{ProductoID: "prod-1", Cantidad: -2})},
		{"línea sin producto", solicitud(dto.VentaItemRequest{ProductoID: "", Cantidad: 1})},
		{"sin cliente", func() dto.RegistrarVentaRequest {
			r := solicitud(dto.VentaItemRequest{ProductoID: "prod-1", Cantidad: 1})
			r.ClienteID = ""
			return r
		}()},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			uc, productoRepo, ventaRepo := escenario(producto("prod-1", "Café molido", "5.00", 10))

			_, err := uc.Registrar(c.req)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			assert.Equal(t, 10, productoRepo.stockDe("prod-1"))
			assert.Equal(t, 0, ventaRepo.count())
		})
	}
}

// Ventas concurrentes sobre el mismo producto nunca sobrevenden: con stock 10
// y 20 compradores de a 1 unidad, exactamente 10 ventas tienen éxito.
func TestRegistrar_Concurrencia_NuncaSobrevende(t *testing.T) {
	uc, productoRepo, ventaRepo := escenario(producto("prod-1", "Café molido", "5.00", 10))

	const compradores = 20
	var wg sync.WaitGroup
	exitos := make(chan struct{}, compradores)

	for i := 0; i < compradores; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Registrar(solicitud(dto.VentaItemRequest{ProductoID: "prod-1", Cantidad: 1}))
			if err == nil {
				exitos <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(exitos)

	assert.Equal(t, 10, len(exitos), "deben tener éxito exactamente 10 ventas")
	assert.Equal(t, 0, productoRepo.stockDe("prod-1"), "el stock termina en cero, nunca negativo")
	assert.Equal(t, 10, ventaRepo.count())
}
