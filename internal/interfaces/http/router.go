package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	MovementUC  *usecase.MovementUseCase
	StockInUC   *inventory.StockInUseCase
	StockOutUC  *inventory.StockOutUseCase
	DashboardUC *analytics.DashboardUseCase
	PDF         *pdf.MarotoReportGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
//
// Matriz de roles por operación:
//
//	crear/actualizar producto   admin, manager, staff
//	eliminar producto           admin, manager
//	registrar entrada           admin, manager, staff
//	crear solicitud             cualquier usuario autenticado
//	aprobar/rechazar            admin, manager
//	despachar                   admin, manager, staff
//	usuarios / reportes         admin, manager
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	managers := RequireRole(entity.RoleAdmin, entity.RoleManager)
	operators := RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleStaff)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", operators, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", operators, productHandler.Update)
	products.Delete("/:id", managers, productHandler.Delete)

	// Stock in (protegido)
	stockIn := protected.Group("/stock-in")
	stockInHandler := NewStockInHandler(deps.StockInUC)
	stockIn.Post("/", operators, stockInHandler.Create)
	stockIn.Get("/", stockInHandler.List)

	// Stock out requests (protegido)
	stockOut := protected.Group("/stock-out")
	stockOutHandler := NewStockOutHandler(deps.StockOutUC)
	stockOut.Post("/", stockOutHandler.Create)
	stockOut.Get("/", stockOutHandler.List)
	stockOut.Get("/:id", stockOutHandler.GetByID)
	stockOut.Post("/:id/approve", managers, stockOutHandler.Approve)
	stockOut.Post("/:id/reject", managers, stockOutHandler.Reject)
	stockOut.Post("/:id/fulfill", operators, stockOutHandler.Fulfill)

	// Movements (protegido, solo lectura)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)

	// Analytics (protegido)
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC)
	analyticsGroup.Get("/dashboard", analyticsHandler.DashboardStats)
	analyticsGroup.Get("/stock-in-by-category", analyticsHandler.StockInByCategory)
	analyticsGroup.Get("/stock-out-by-category", analyticsHandler.StockOutByCategory)
	analyticsGroup.Get("/recent-activity", analyticsHandler.RecentActivity)

	// Users (protegido, administración)
	users := protected.Group("/users", managers)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)

	// Reports (protegido)
	reports := protected.Group("/reports", managers)
	reportHandler := NewReportHandler(deps.ProductUC, deps.PDF)
	reports.Get("/low-stock/pdf", reportHandler.LowStockPDF)
}
