package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sekhard17/inventario-surinnova/internal/application/store"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthStore     *store.AuthStore
	ProductStore  *store.ProductStore
	MovementStore *store.MovementStore
	OrderStore    *store.OrderStore
	UserStore     *store.UserStore
	JWTSecret     string
}

// Router registra las rutas de la API. Las vistas nunca hablan con el
// servicio remoto directamente: todo pasa por los stores.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público; session resuelve "sin sesión" como respuesta normal)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthStore)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/session", authHandler.Session)

	// Rutas protegidas (requieren Bearer Token de sesión)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/logout", authHandler.Logout)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductStore)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/low-stock", productHandler.LowStock)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Patch("/:id/stock", productHandler.AdjustStock)

	// Inventory movements (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementStore)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Register)
	movements.Get("/recent", movementHandler.Recent)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderStore)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/pending", orderHandler.Pending)
	orders.Get("/today", orderHandler.Today)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.ProductStore, deps.MovementStore, deps.OrderStore)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Users (protegido, administración: solo admin y supervisor)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin, entity.RoleSupervisor))
	userHandler := NewUserHandler(deps.UserStore)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Post("/register", userHandler.Register)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
