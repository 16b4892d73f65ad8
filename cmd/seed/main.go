package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
	"github.com/tu-usuario/almacen-wms/internal/infrastructure/postgres"
	"github.com/tu-usuario/almacen-wms/pkg/config"
	"github.com/tu-usuario/almacen-wms/pkg/logger"
)

// Seed idempotente para desarrollo local: crea esquema, usuarios de prueba
// (admin/admin123, bodeguero/bodega123), unidades, bodegas con estantes,
// categoría general, un producto de ejemplo y un proveedor/cliente genéricos.
// Ejecutar de nuevo no duplica nada.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	now := time.Now().UTC()
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	shelfRepo := postgres.NewShelfRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)

	seedUser(log, userRepo, "admin", "admin123", "Administrador", entity.RoleAdmin, now)
	seedUser(log, userRepo, "bodeguero", "bodega123", "Bodeguero", entity.RoleBodeguero, now)

	seedUnit(log, unitRepo, "Pieza", "pcs", now)
	seedUnit(log, unitRepo, "Kilogramo", "kg", now)
	seedUnit(log, unitRepo, "Caja", "caja", now)

	category := seedCategory(log, categoryRepo, "General", now)

	wh1 := seedWarehouse(log, warehouseRepo, "Bodega Central", now)
	wh2 := seedWarehouse(log, warehouseRepo, "Bodega de Despacho", now)

	seedShelf(log, shelfRepo, wh1, "A1", "Bodega Central / A1", now)
	seedShelf(log, shelfRepo, wh1, "B2", "Bodega Central / B2", now)
	seedShelf(log, shelfRepo, wh2, "R-01", "Despacho / R-01", now)

	seedProduct(log, productRepo, unitRepo, category, now)

	seedSupplier(log, supplierRepo, "Proveedor General", now)
	seedCustomer(log, customerRepo, "Cliente General", now)

	log.Info().Msg("seed completado (admin/admin123, bodeguero/bodega123)")
}

func seedUser(log *logger.Logger, repo repository.UserRepository, username, password, name, role string, now time.Time) {
	existing, err := repo.GetByUsername(username)
	if err != nil {
		log.Fatal().Err(err).Str("username", username).Msg("buscar usuario")
	}
	if existing != nil {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(user); err != nil {
		log.Fatal().Err(err).Str("username", username).Msg("crear usuario")
	}
	log.Info().Str("username", username).Str("role", role).Msg("usuario creado")
}

func seedUnit(log *logger.Logger, repo repository.UnitRepository, name, shortCode string, now time.Time) {
	existing, err := repo.GetByShortCode(shortCode)
	if err != nil {
		log.Fatal().Err(err).Str("short_code", shortCode).Msg("buscar unidad")
	}
	if existing != nil {
		return
	}
	unit := &entity.Unit{
		ID:        uuid.New().String(),
		Name:      name,
		ShortCode: shortCode,
		IsActive:  true,
		CreatedAt: now,
	}
	if err := repo.Create(unit); err != nil {
		log.Fatal().Err(err).Str("short_code", shortCode).Msg("crear unidad")
	}
	log.Info().Str("short_code", shortCode).Msg("unidad creada")
}

func seedCategory(log *logger.Logger, repo repository.CategoryRepository, name string, now time.Time) *entity.Category {
	existing, err := repo.GetByName(name)
	if err != nil {
		log.Fatal().Err(err).Str("name", name).Msg("buscar categoría")
	}
	if existing != nil {
		return existing
	}
	category := &entity.Category{ID: uuid.New().String(), Name: name, CreatedAt: now}
	if err := repo.Create(category); err != nil {
		log.Fatal().Err(err).Str("name", name).Msg("crear categoría")
	}
	log.Info().Str("name", name).Msg("categoría creada")
	return category
}

func seedWarehouse(log *logger.Logger, repo repository.WarehouseRepository, name string, now time.Time) *entity.Warehouse {
	list, err := repo.List(false, 100, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("listar bodegas")
	}
	for _, w := range list {
		if w.Name == name {
			return w
		}
	}
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(warehouse); err != nil {
		log.Fatal().Err(err).Str("name", name).Msg("crear bodega")
	}
	log.Info().Str("name", name).Msg("bodega creada")
	return warehouse
}

func seedShelf(log *logger.Logger, repo repository.ShelfRepository, warehouse *entity.Warehouse, code, description string, now time.Time) {
	shelves, err := repo.ListByWarehouse(warehouse.ID)
	if err != nil {
		log.Fatal().Err(err).Str("warehouse", warehouse.Name).Msg("listar estantes")
	}
	for _, s := range shelves {
		if s.Code == code {
			return
		}
	}
	shelf := &entity.Shelf{
		ID:          uuid.New().String(),
		WarehouseID: warehouse.ID,
		Code:        code,
		Description: description,
		CreatedAt:   now,
	}
	if err := repo.Create(shelf); err != nil {
		log.Fatal().Err(err).Str("code", code).Msg("crear estante")
	}
	log.Info().Str("code", code).Str("warehouse", warehouse.Name).Msg("estante creado")
}

func seedProduct(log *logger.Logger, repo repository.ProductRepository, unitRepo repository.UnitRepository, category *entity.Category, now time.Time) {
	const sku = "SKU-001"
	existing, err := repo.GetBySKU(sku)
	if err != nil {
		log.Fatal().Err(err).Str("sku", sku).Msg("buscar producto")
	}
	if existing != nil {
		return
	}
	unit, err := unitRepo.GetByShortCode("pcs")
	if err != nil || unit == nil {
		log.Fatal().Err(err).Msg("unidad pcs no disponible")
	}
	barcode := "000000000001"
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           sku,
		Name:          "Producto de Ejemplo",
		Barcode:       &barcode,
		CategoryID:    &category.ID,
		UnitID:        unit.ID,
		MinStockLevel: decimal.NewFromInt(10),
		Description:   "Producto creado por el seed",
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := repo.Create(product); err != nil {
		log.Fatal().Err(err).Str("sku", sku).Msg("crear producto")
	}
	log.Info().Str("sku", sku).Msg("producto creado")
}

func seedSupplier(log *logger.Logger, repo repository.SupplierRepository, name string, now time.Time) {
	list, err := repo.List(false, 100, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("listar proveedores")
	}
	for _, s := range list {
		if s.Name == name {
			return
		}
	}
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(supplier); err != nil {
		log.Fatal().Err(err).Str("name", name).Msg("crear proveedor")
	}
	log.Info().Str("name", name).Msg("proveedor creado")
}

func seedCustomer(log *logger.Logger, repo repository.CustomerRepository, name string, now time.Time) {
	list, err := repo.List(false, 100, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("listar clientes")
	}
	for _, c := range list {
		if c.Name == name {
			return
		}
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(customer); err != nil {
		log.Fatal().Err(err).Str("name", name).Msg("crear cliente")
	}
	log.Info().Str("name", name).Msg("cliente creado")
}
