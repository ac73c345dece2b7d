package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/trading-pro/internal/application/auth"
	"github.com/tu-usuario/trading-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	SupplierUC *usecase.SupplierUseCase
	ProductUC  *usecase.ProductUseCase
	OrderUC    *usecase.OrderUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Las lecturas son públicas; las
// mutaciones requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	productHandler := NewProductHandler(deps.ProductUC)
	orderHandler := NewOrderHandler(deps.OrderUC)

	// Lecturas (público)
	api.Get("/customers", customerHandler.List)
	api.Get("/customers/:id", customerHandler.GetByID)
	api.Get("/suppliers", supplierHandler.List)
	api.Get("/suppliers/:id", supplierHandler.GetByID)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)
	api.Get("/orders/imports", orderHandler.ListImports)
	api.Get("/orders/imports/:id", orderHandler.GetImportByID)
	api.Get("/orders/exports", orderHandler.ListExports)
	api.Get("/orders/exports/:id", orderHandler.GetExportByID)
	api.Get("/orders/totals", orderHandler.Totals)

	// Mutaciones (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/customers", customerHandler.Create)
	protected.Put("/customers/:id", customerHandler.Update)
	protected.Delete("/customers/:id", customerHandler.Delete)

	protected.Post("/suppliers", supplierHandler.Create)
	protected.Put("/suppliers/:id", supplierHandler.Update)
	protected.Delete("/suppliers/:id", supplierHandler.Delete)

	protected.Post("/products", productHandler.Create)
	protected.Put("/products/:id", productHandler.Update)
	protected.Delete("/products/:id", productHandler.Delete)

	protected.Post("/orders/imports", orderHandler.CreateImport)
	protected.Delete("/orders/imports/:id", orderHandler.DeleteImport)
	protected.Post("/orders/exports", orderHandler.CreateExport)
	protected.Delete("/orders/exports/:id", orderHandler.DeleteExport)
}
