package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/gofiber/contrib/swagger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de swagger lee docs/swagger.json al montarse y entra en
// pánico si el archivo no existe: un checkout limpio debe poder arrancar,
// así que el spec generado va versionado en el repo.
func TestSwaggerSpec_ExisteYMonta(t *testing.T) {
	const specPath = "../../docs/swagger.json"

	raw, err := os.ReadFile(specPath)
	require.NoError(t, err, "docs/swagger.json debe estar versionado")

	var spec struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &spec))
	assert.Equal(t, "2.0", spec.Swagger)

	// Toda ruta registrada por el router debe estar documentada
	for _, route := range []string{
		"/health",
		"/api/auth/login",
		"/api/auth/me",
		"/api/auth/change-password",
		"/api/users",
		"/api/users/{id}",
		"/api/categories",
		"/api/items",
		"/api/warehouses",
		"/api/stock/opening",
		"/api/stock/movements",
		"/api/stock/levels",
	} {
		assert.Contains(t, spec.Paths, route)
	}

	assert.NotPanics(t, func() {
		swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: specPath,
			Path:     "docs",
			Title:    "Suministros API",
		})
	}, "el middleware debe montar con el spec versionado")
}
