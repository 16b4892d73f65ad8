package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-wms/internal/application/auth"
	"github.com/tu-usuario/almacen-wms/internal/application/purchases"
	"github.com/tu-usuario/almacen-wms/internal/application/reports"
	"github.com/tu-usuario/almacen-wms/internal/application/stock"
	"github.com/tu-usuario/almacen-wms/internal/application/usecase"
	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	ProductUC    *usecase.ProductUseCase
	CategoryUC   *usecase.CategoryUseCase
	UnitUC       *usecase.UnitUseCase
	SupplierUC   *usecase.SupplierUseCase
	CustomerUC   *usecase.CustomerUseCase
	StockApplyUC *stock.ApplyMovementUseCase
	StockQueryUC *stock.QueryUseCase
	PurchaseUC   *purchases.PurchaseUseCase
	ReportUC     *reports.ReportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Login es la única ruta pública; el
// resto exige Bearer token. ADJUST no se corta aquí: el motor valida el rol
// del autor aunque la ruta deje pasar a ambos roles.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Post("/auth/register", adminOnly, authHandler.Register)

	// Usuarios (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Delete("/:id", userHandler.Deactivate)

	// Bodegas y estantes
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", adminOnly, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", adminOnly, warehouseHandler.Update)
	warehouses.Post("/:id/shelves", adminOnly, warehouseHandler.CreateShelf)
	warehouses.Get("/:id/shelves", warehouseHandler.ListShelves)
	protected.Delete("/shelves/:id", adminOnly, warehouseHandler.DeleteShelf)

	// Catálogo de productos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", adminOnly, productHandler.Update)

	// Datos maestros
	masterHandler := NewMasterHandler(deps.CategoryUC, deps.UnitUC)
	protected.Post("/categories", adminOnly, masterHandler.CreateCategory)
	protected.Get("/categories", masterHandler.ListCategories)
	protected.Post("/units", adminOnly, masterHandler.CreateUnit)
	protected.Get("/units", masterHandler.ListUnits)
	protected.Delete("/units/:id", adminOnly, masterHandler.DeactivateUnit)

	// Proveedores y clientes
	supplierHandler := NewPartnerHandler(deps.SupplierUC)
	suppliers := protected.Group("/suppliers", adminOnly)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Deactivate)

	customerHandler := NewPartnerHandler(deps.CustomerUC)
	customers := protected.Group("/customers", adminOnly)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Deactivate)

	// Stock: movimientos y saldos (ambos roles)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockApplyUC, deps.StockQueryUC)
	stockGroup.Post("/movements", stockHandler.RegisterMovement)
	stockGroup.Get("/movements", stockHandler.ListMovements)
	stockGroup.Get("/levels", stockHandler.ListLevels)
	stockGroup.Get("/shelves", stockHandler.ListShelves)

	// Compras (solo admin)
	purchaseGroup := protected.Group("/purchases", adminOnly)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchaseGroup.Post("/", purchaseHandler.Create)
	purchaseGroup.Get("/", purchaseHandler.List)
	purchaseGroup.Get("/:id", purchaseHandler.Get)
	purchaseGroup.Post("/:id/items", purchaseHandler.AddItem)
	purchaseGroup.Delete("/:id/items/:itemId", purchaseHandler.RemoveItem)
	purchaseGroup.Post("/:id/receive", purchaseHandler.Receive)

	// Reportes (solo admin)
	reportGroup := protected.Group("/reports", adminOnly)
	reportHandler := NewReportHandler(deps.ReportUC)
	reportGroup.Get("/dashboard", reportHandler.Dashboard)
	reportGroup.Get("/movements", reportHandler.Movements)
	reportGroup.Get("/movements/export.pdf", reportHandler.ExportPDF)
	reportGroup.Get("/movements/export.xml", reportHandler.ExportXML)
	reportGroup.Get("/low-stock", reportHandler.LowStock)
}
