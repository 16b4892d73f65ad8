package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/almacen-wms/internal/application/auth"
	"github.com/tu-usuario/almacen-wms/internal/application/purchases"
	"github.com/tu-usuario/almacen-wms/internal/application/reports"
	"github.com/tu-usuario/almacen-wms/internal/application/stock"
	"github.com/tu-usuario/almacen-wms/internal/application/usecase"
	infrapdf "github.com/tu-usuario/almacen-wms/internal/infrastructure/pdf"
	"github.com/tu-usuario/almacen-wms/internal/infrastructure/postgres"
	"github.com/tu-usuario/almacen-wms/internal/infrastructure/xmlexport"
	httpRouter "github.com/tu-usuario/almacen-wms/internal/interfaces/http"
	"github.com/tu-usuario/almacen-wms/pkg/config"
	"github.com/tu-usuario/almacen-wms/pkg/logger"
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

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	shelfRepo := postgres.NewShelfRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	levelRepo := postgres.NewStockLevelRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockApplyUC := stock.NewApplyMovementUseCase(txRunner, warehouseRepo, shelfRepo, userRepo)
	stockQueryUC := stock.NewQueryUseCase(levelRepo, movementRepo, shelfRepo)
	purchaseUC := purchases.NewPurchaseUseCase(
		txRunner, stockApplyUC,
		purchaseRepo, supplierRepo, warehouseRepo, shelfRepo, productRepo,
	)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	xmlExporter := xmlexport.NewEtreeExporter()
	reportUC := reports.NewReportUseCase(reportRepo, pdfGenerator, xmlExporter)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, shelfRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, unitRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén WMS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		WarehouseUC:  warehouseUC,
		ProductUC:    productUC,
		CategoryUC:   categoryUC,
		UnitUC:       unitUC,
		SupplierUC:   supplierUC,
		CustomerUC:   customerUC,
		StockApplyUC: stockApplyUC,
		StockQueryUC: stockQueryUC,
		PurchaseUC:   purchaseUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
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
