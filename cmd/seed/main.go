// seed crea el usuario administrador inicial de la plataforma.
//
// Uso: go run ./cmd/seed -email admin@example.com -password 'Secreta123!'
// Lee la configuración de base de datos de las mismas env vars que la API.
// Si el email ya existe no hace nada.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Suministros-api/pkg/config"
	"github.com/jhoicas/Suministros-api/pkg/password"
)

func main() {
	email := flag.String("email", "", "email del administrador")
	pass := flag.String("password", "", "contraseña inicial del administrador")
	name := flag.String("name", "Administrador", "nombre visible")
	flag.Parse()

	if *email == "" || *pass == "" {
		fmt.Fprintln(os.Stderr, "Uso: seed -email <email> -password <contraseña> [-name <nombre>]")
		os.Exit(1)
	}
	if err := password.ValidateStrength(*pass); err != nil {
		fmt.Fprintf(os.Stderr, "Contraseña débil: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	existing, err := userRepo.GetByEmail(*email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Consultar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("El usuario %s ya existe, nada que hacer\n", *email)
		return
	}

	hash, err := password.Hash(*pass, cfg.Security.BcryptCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash de contraseña: %v\n", err)
		os.Exit(1)
	}

	now := time.Now().UTC()
	admin := &entity.User{
		ID:           uuid.NewString(),
		Email:        *email,
		PasswordHash: hash,
		Name:         *name,
		Role:         entity.RoleAdmin,
		IsActive:     true,
		// El admin de arranque define su propia contraseña, no necesita rotarla.
		MustChangePassword: false,
		CanChangePassword:  true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := userRepo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "Crear administrador: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Administrador creado: %s (%s)\n", admin.Email, admin.ID)
}
