package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Suministros-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Suministros-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "suministros-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con la cadena de guards
// completa: AuthMiddleware → RequireSession → RequirePasswordChanged →
// RequireRole, y un handler dummy que devuelve 200 si pasa todos.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireSession(),
		apphttp.RequirePasswordChanged(),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT con el rol y flag de rotación indicados.
func tokenFor(t *testing.T, role string, mustChange bool) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, mustChange, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, entity.RoleAdmin, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"ADMIN debe poder acceder a ruta restringida a ADMIN")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, entity.RoleAdmin, body["role"], "el role debe ser ADMIN")
}

// Caso 1b: El usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_StorekeeperAccedeRutaAdminOStorekeeper(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin, entity.RoleStorekeeper)
	resp := doRequest(t, app, tokenFor(t, entity.RoleStorekeeper, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"STOREKEEPER debe poder acceder a ruta que permite ADMIN o STOREKEEPER")
}

// Caso 2: El usuario tiene un rol diferente al requerido → HTTP 403 Forbidden.
func TestRequireRole_StaffBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, entity.RoleStaff, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"STAFF no debe poder acceder a ruta restringida a ADMIN")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 3: Token con rol vacío (token legacy sin claim) → HTTP 401, con la
// misma respuesta que cualquier otro fallo de autenticación.
func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, "", false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sin rol debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNAUTHENTICATED",
		"todo fallo de autenticación reporta el mismo código")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — respuesta uniforme ante cualquier fallo
// ──────────────────────────────────────────────────────────────────────────────

// Sin header, header malformado y token inválido deben producir exactamente
// la misma respuesta 401: el cliente no puede distinguir la causa.
func TestAuthMiddleware_FallosIndistinguibles(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)

	cases := map[string]string{
		"sin header":        "",
		"sin esquema":       "token-suelto",
		"esquema incorecto": "Basic abc123",
		"token malformado":  "Bearer token.invalido.aqui",
	}

	var bodies []string
	for name, header := range cases {
		resp := doRequest(t, app, header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, name)
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		bodies = append(bodies, string(b))
	}
	for i := 1; i < len(bodies); i++ {
		assert.Equal(t, bodies[0], bodies[i],
			"todas las causas de fallo deben producir la misma respuesta")
	}
}

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, entity.RoleFinance, false))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, entity.RoleFinance, body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePasswordChanged — gate de rotación de contraseña
// ──────────────────────────────────────────────────────────────────────────────

// Token con must_change_password=true → 403 en ruta protegida aun teniendo
// el rol correcto.
func TestRequirePasswordChanged_BloqueaContraseñaTemporal(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, entity.RoleAdmin, true))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"contraseña temporal sin rotar debe bloquear el acceso")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "PASSWORD_ROTATION_REQUIRED")
}

// El mismo token bloqueado arriba debe poder acceder a una ruta montada sin
// el guard de rotación (el cambio de contraseña).
func TestRequirePasswordChanged_RutaSinGate_Pasa(t *testing.T) {
	app := fiber.New()
	app.Post("/auth/change-password",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireSession(),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
	)

	req := httptest.NewRequest(http.MethodPost, "/auth/change-password", nil)
	req.Header.Set("Authorization", tokenFor(t, entity.RoleStaff, true))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"la ruta de cambio de contraseña no aplica el gate de rotación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireSession
// ──────────────────────────────────────────────────────────────────────────────

// Ruta montada con RequireSession pero sin AuthMiddleware: no hay identidad
// en locals → 401.
func TestRequireSession_SinIdentidad_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/mal-montada", apphttp.RequireSession(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/mal-montada", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
