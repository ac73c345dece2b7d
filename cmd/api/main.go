package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/trading-pro/internal/application/auth"
	"github.com/tu-usuario/trading-pro/internal/application/usecase"
	"github.com/tu-usuario/trading-pro/internal/infrastructure/csvstore"
	httpRouter "github.com/tu-usuario/trading-pro/internal/interfaces/http"
	"github.com/tu-usuario/trading-pro/pkg/config"
	"github.com/tu-usuario/trading-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_dir", cfg.Store.DataDir).
		Msg("iniciando aplicación")

	if err := os.MkdirAll(cfg.Store.DataDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("crear directorio de datos")
	}

	customerRepo := csvstore.NewCustomerRepository(cfg.Store.Path(cfg.Store.CustomersFile))
	supplierRepo := csvstore.NewSupplierRepository(cfg.Store.Path(cfg.Store.SuppliersFile))
	productRepo := csvstore.NewProductRepository(cfg.Store.Path(cfg.Store.ProductsFile))
	orderRepo := csvstore.NewOrderRepository(
		cfg.Store.Path(cfg.Store.ImportOrdersFile),
		cfg.Store.Path(cfg.Store.ExportOrdersFile),
		cfg.Store.Path(cfg.Store.OrderItemsFile),
	)
	orderRepo.SetCustomerRepository(customerRepo)
	orderRepo.SetSupplierRepository(supplierRepo)
	orderRepo.SetProductRepository(productRepo)

	// Los almacenes hermanos se cargan antes que las órdenes: la resolución
	// de referencias ocurre en línea durante el parseo de órdenes.
	if err := customerRepo.Load(); err != nil {
		log.Fatal().Err(err).Msg("cargar clientes")
	}
	if err := supplierRepo.Load(); err != nil {
		log.Fatal().Err(err).Msg("cargar proveedores")
	}
	if err := productRepo.Load(); err != nil {
		log.Fatal().Err(err).Msg("cargar productos")
	}
	if err := orderRepo.Load(); err != nil {
		log.Fatal().Err(err).Msg("cargar órdenes")
	}
	log.Info().
		Int("customers", customerRepo.Count()).
		Int("suppliers", supplierRepo.Count()).
		Int("products", productRepo.Count()).
		Int("import_orders", orderRepo.CountImportOrders()).
		Int("export_orders", orderRepo.CountExportOrders()).
		Msg("almacenes cargados")

	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, customerRepo, supplierRepo, productRepo)
	authUC := auth.NewAuthUseCase(
		auth.Credential{
			Username:     cfg.Auth.Username,
			PasswordHash: cfg.Auth.PasswordHash,
		},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		SupplierUC: supplierUC,
		ProductUC:  productUC,
		OrderUC:    orderUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
