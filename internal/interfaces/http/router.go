package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/uis-entornos/comercio-api/internal/application/auth"
	"github.com/uis-entornos/comercio-api/internal/application/sales"
	"github.com/uis-entornos/comercio-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SucursalUC     *usecase.SucursalUseCase
	EmpleadoUC     *usecase.EmpleadoUseCase
	ClienteUC      *usecase.ClienteUseCase
	ProductoUC     *usecase.ProductoUseCase
	RegistrarVenta *sales.RegistrarVentaUseCase
	ConsultaVentas *sales.ConsultaVentasUseCase
	Recibo         *sales.ReciboUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Login (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sucursales (protegido)
	sucursales := protected.Group("/sucursales")
	sucursalHandler := NewSucursalHandler(deps.SucursalUC)
	sucursales.Post("/", sucursalHandler.Create)
	sucursales.Get("/", sucursalHandler.List)
	sucursales.Get("/:id", sucursalHandler.GetByID)
	sucursales.Put("/:id", sucursalHandler.Update)
	sucursales.Delete("/:id", sucursalHandler.Delete)

	// Empleados (protegido)
	empleados := protected.Group("/empleados")
	empleadoHandler := NewEmpleadoHandler(deps.EmpleadoUC)
	empleados.Post("/", empleadoHandler.Create)
	empleados.Get("/", empleadoHandler.List)
	empleados.Get("/:id", empleadoHandler.GetByID)
	empleados.Put("/:id", empleadoHandler.Update)
	empleados.Delete("/:id", empleadoHandler.Delete)

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Productos (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Ventas (protegido)
	ventas := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.RegistrarVenta, deps.ConsultaVentas, deps.Recibo)
	ventas.Post("/", ventaHandler.Registrar)
	ventas.Get("/", ventaHandler.Listar)
	ventas.Get("/hoy", ventaHandler.VentasDeHoy)
	ventas.Get("/:id/detalles", ventaHandler.ListarDetalles)
	ventas.Get("/:id/recibo", ventaHandler.Recibo)
}
