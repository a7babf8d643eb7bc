// seed crea el estado inicial de los stores JSON: un usuario administrador
// (credenciales desde SEED_ADMIN_USERNAME / SEED_ADMIN_PASSWORD) y un
// catálogo de productos de ejemplo.
//
// Uso: go run ./cmd/seed
// Se niega a tocar un store de usuarios que ya tenga registros, para no
// pisar credenciales existentes.
package main

import (
	"fmt"
	"os"

	"github.com/jcastellanos/inventario-api/internal/domain/entity"
	"github.com/jcastellanos/inventario-api/internal/infrastructure/jsonstore"
	"github.com/jcastellanos/inventario-api/pkg/config"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Seed.AdminPassword == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_PASSWORD es obligatorio para sembrar el admin")
		os.Exit(1)
	}

	userRepo := jsonstore.NewUserRepository(cfg.Store.UsersPath)
	existing, err := userRepo.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer store de usuarios: %v\n", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		fmt.Fprintf(os.Stderr, "El store de usuarios %s ya tiene %d registros; no se siembra\n",
			cfg.Store.UsersPath, len(existing))
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear password: %v\n", err)
		os.Exit(1)
	}
	admin := &entity.User{
		Username:     cfg.Seed.AdminUsername,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}
	if err := userRepo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "Crear admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Admin %q creado (id %d) en %s\n", admin.Username, admin.ID, cfg.Store.UsersPath)

	productRepo := jsonstore.NewProductRepository(cfg.Store.ProductsPath)
	catalogo := []*entity.Product{
		{Nombre: "Mouse", Categoria: "Periférico", Precio: decimal.NewFromInt(10), Stock: 5},
		{Nombre: "Teclado", Categoria: "Periférico", Precio: decimal.NewFromInt(25), Stock: 8},
		{Nombre: "Monitor 24\"", Categoria: "Pantallas", Precio: decimal.NewFromFloat(149.99), Stock: 3},
	}
	for _, p := range catalogo {
		if err := productRepo.Create(p); err != nil {
			fmt.Fprintf(os.Stderr, "Crear producto %q: %v\n", p.Nombre, err)
			os.Exit(1)
		}
	}
	fmt.Printf("%d productos de ejemplo en %s\n", len(catalogo), cfg.Store.ProductsPath)
}
