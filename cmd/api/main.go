package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/uis-entornos/comercio-api/internal/application/auth"
	"github.com/uis-entornos/comercio-api/internal/application/sales"
	"github.com/uis-entornos/comercio-api/internal/application/usecase"
	infrapdf "github.com/uis-entornos/comercio-api/internal/infrastructure/pdf"
	"github.com/uis-entornos/comercio-api/internal/infrastructure/postgres"
	httpRouter "github.com/uis-entornos/comercio-api/internal/interfaces/http"
	"github.com/uis-entornos/comercio-api/pkg/config"
	"github.com/uis-entornos/comercio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	sucursalRepo := postgres.NewSucursalRepository(pool)
	empleadoRepo := postgres.NewEmpleadoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)

	sucursalUC := usecase.NewSucursalUseCase(sucursalRepo)
	empleadoUC := usecase.NewEmpleadoUseCase(empleadoRepo, sucursalRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo, sucursalRepo)

	registrarVentaUC := sales.NewRegistrarVentaUseCase(
		ventaRepo, productoRepo, clienteRepo, empleadoRepo, sucursalRepo,
	)
	consultaVentasUC := sales.NewConsultaVentasUseCase(ventaRepo)

	reciboGenerator := infrapdf.NewMarotoReciboGenerator()
	reciboUC := sales.NewReciboUseCase(
		ventaRepo, sucursalRepo, clienteRepo, empleadoRepo, reciboGenerator,
	)

	authUC := auth.NewAuthUseCase(empleadoRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		SucursalUC:     sucursalUC,
		EmpleadoUC:     empleadoUC,
		ClienteUC:      clienteUC,
		ProductoUC:     productoUC,
		RegistrarVenta: registrarVentaUC,
		ConsultaVentas: consultaVentasUC,
		Recibo:         reciboUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
