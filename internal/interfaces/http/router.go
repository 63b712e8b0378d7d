package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Suministros-api/internal/application/auth"
	"github.com/jhoicas/Suministros-api/internal/application/inventory"
	"github.com/jhoicas/Suministros-api/internal/application/usecase"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	CategoryUC  *usecase.CategoryUseCase
	ItemUC      *usecase.ItemUseCase
	WarehouseUC *usecase.WarehouseUseCase
	StockUC     *inventory.StockUseCase
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API. Cadena de guards en orden fijo:
// autenticación → sesión → rotación de contraseña → rol. El único endpoint
// protegido fuera del guard de rotación es el cambio de contraseña.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		errorLog = deps.Log
	}

	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)

	// Auth (público)
	api.Post("/auth/login", authHandler.Login)

	// Cambio de contraseña: autenticado pero SIN guard de rotación, para que
	// un usuario con contraseña temporal pueda rotarla.
	api.Post("/auth/change-password",
		AuthMiddleware(deps.JWTSecret),
		RequireSession(),
		authHandler.ChangePassword,
	)

	// Rutas protegidas: Bearer + sesión + contraseña rotada
	protected := api.Group("/",
		AuthMiddleware(deps.JWTSecret),
		RequireSession(),
		RequirePasswordChanged(),
	)

	protected.Get("/auth/me", authHandler.Me)

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Patch("/:id", userHandler.Update)

	// Categories
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	protected.Post("/categories", RequireRole(entity.RoleAdmin, entity.RoleProcurement), categoryHandler.Create)
	protected.Get("/categories", categoryHandler.List)

	// Items
	itemHandler := NewItemHandler(deps.ItemUC)
	protected.Post("/items", RequireRole(entity.RoleAdmin, entity.RoleProcurement), itemHandler.Create)
	protected.Get("/items", itemHandler.List)

	// Warehouses
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	protected.Post("/warehouses", RequireRole(entity.RoleAdmin), warehouseHandler.Create)
	protected.Get("/warehouses", warehouseHandler.List)

	// Stock Ledger
	inventoryHandler := NewInventoryHandler(deps.StockUC)
	protected.Post("/stock/opening",
		RequireRole(entity.RoleAdmin, entity.RoleStorekeeper),
		inventoryHandler.RecordOpeningStock)
	protected.Post("/stock/movements",
		RequireRole(entity.RoleAdmin, entity.RoleStorekeeper),
		inventoryHandler.RegisterMovement)
	protected.Get("/stock/movements",
		RequireRole(entity.RoleAdmin, entity.RoleFinance, entity.RoleStorekeeper),
		inventoryHandler.ListMovements)
	protected.Get("/stock/levels",
		RequireRole(entity.RoleAdmin, entity.RoleFinance, entity.RoleProcurement,
			entity.RoleStorekeeper, entity.RoleDepartmentManager),
		inventoryHandler.ListStockLevels)
}
