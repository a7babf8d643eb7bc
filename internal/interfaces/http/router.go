package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcastellanos/inventario-api/internal/application/auth"
	"github.com/jcastellanos/inventario-api/internal/application/usecase"
	"github.com/jcastellanos/inventario-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	UserUC    *usecase.UserUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Las lecturas de productos son
// públicas; toda mutación exige Bearer Token, y la gestión de usuarios
// además exige rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Login (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	requireToken := AuthMiddleware(deps.JWTSecret)

	// Productos: lectura pública, mutación con token
	productos := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	productos.Get("/", productHandler.List)
	productos.Get("/:id", productHandler.GetByID)
	productos.Post("/", requireToken, productHandler.Create)
	productos.Put("/:id", requireToken, productHandler.Update)
	productos.Patch("/:id", requireToken, productHandler.Patch)
	productos.Delete("/:id", requireToken, productHandler.Delete)

	// Usuarios: solo administradores
	usuarios := api.Group("/usuarios", requireToken, RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	usuarios.Get("/", userHandler.List)
	usuarios.Post("/", userHandler.Create)
	usuarios.Delete("/:id", userHandler.Delete)
}
