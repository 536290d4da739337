package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario/internal/application/auth"
	"github.com/tu-usuario/inventario/internal/application/inventory"
	"github.com/tu-usuario/inventario/internal/application/usecase"
	"github.com/tu-usuario/inventario/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	CategoryUC       *usecase.CategoryUseCase
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	LedgerQuery      *inventory.LedgerQueryUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authRequired := AuthMiddleware(deps.JWTSecret)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Put("/update/:id", authRequired, authHandler.Update)
	authGroup.Delete("/delete/:id", authRequired, RequireRole(entity.RoleAdmin), authHandler.Delete)

	// Categorías (listado público, mutaciones protegidas)
	categories := api.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/create", authRequired, categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/update/:id", authRequired, categoryHandler.Update)
	categories.Delete("/delete/:id", authRequired, categoryHandler.Delete)

	// Productos (lecturas públicas, mutaciones protegidas)
	products := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/create", authRequired, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Put("/update/:id", authRequired, productHandler.Update)
	products.Delete("/delete/:id", authRequired, productHandler.Delete)
	products.Get("/:id", productHandler.GetByID)

	// Inventario (todo protegido). Las rutas fijas van antes que /:producto_id.
	invGroup := api.Group("/inventario", authRequired)
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.LedgerQuery)
	invGroup.Post("/movimiento", inventoryHandler.RegisterMovement)
	invGroup.Get("/", inventoryHandler.ListMovements)
	invGroup.Get("/movimientos-productos", inventoryHandler.MovementDistribution)
	invGroup.Get("/stock-evolucion/:producto_id", inventoryHandler.StockEvolution)
	invGroup.Get("/reporte", inventoryHandler.LedgerReport)
	invGroup.Get("/:producto_id", inventoryHandler.ListMovementsByProduct)
}
