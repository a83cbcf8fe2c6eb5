package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agrostock-api/internal/application/auth"
	"github.com/jhoicas/agrostock-api/internal/application/reports"
	"github.com/jhoicas/agrostock-api/internal/application/stock"
	"github.com/jhoicas/agrostock-api/internal/application/usecase"
	"github.com/jhoicas/agrostock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	UserUC           *usecase.UserUseCase
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *stock.RegisterMovementUseCase
	DashboardUC      *reports.DashboardUseCase
	PDFUC            *reports.PDFUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Administración de usuarios (solo ADMIN)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.UserUC)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users/:id/role", adminHandler.UpdateRole)
	admin.Delete("/users/:id", adminHandler.DeleteUser)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock movements (protegido): el saldo de un producto solo cambia por aquí
	stockHandler := NewStockHandler(deps.RegisterMovement)
	products.Post("/:id/stock/add", stockHandler.AddStock)
	products.Post("/:id/stock/remove", stockHandler.RemoveStock)
	products.Get("/:id/movements", stockHandler.GetHistory)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.DashboardUC, deps.PDFUC)
	reportsGroup.Get("/category-summary", reportHandler.CategorySummary)
	reportsGroup.Get("/dashboard", reportHandler.Dashboard)
	reportsGroup.Get("/inventory/pdf", reportHandler.InventoryPDF)
}
