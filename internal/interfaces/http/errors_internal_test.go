package http

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/pkg/logger"
)

func respondVia(t *testing.T, err error) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestRespondError_MapeoDeSentinelas(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"entrada inválida", domain.ErrInvalidInput, http.StatusBadRequest, "INVALID_INPUT"},
		{"contraseña débil", domain.ErrWeakPassword, http.StatusBadRequest, "WEAK_PASSWORD"},
		{"credenciales", domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"prohibido", domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"no encontrado", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"conflicto", domain.ErrConflict, http.StatusConflict, "CONFLICT"},
		{"stock insuficiente", domain.ErrInsufficientStock, http.StatusBadRequest, "INSUFFICIENT_STOCK"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := respondVia(t, tc.err)
			assert.Equal(t, tc.status, status)
			assert.Contains(t, body, tc.code)
			assert.Contains(t, body, `"success":false`)
		})
	}
}

// Un error no anticipado responde 500 genérico: el detalle interno va solo
// al log del servidor, nunca al cliente.
func TestRespondError_InternoNoFiltraDetalle(t *testing.T) {
	status, body := respondVia(t, errors.New("dial tcp 10.0.0.1:5432: conexión rechazada"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body, "INTERNAL")
	assert.NotContains(t, body, "10.0.0.1",
		"el detalle del error interno no debe llegar al cliente")
}

// Router inyecta el logger de la aplicación en el responder de errores; el
// resto del árbol no usa el logger global de zerolog y este paquete tampoco.
func TestRouter_InyectaLoggerDeErrores(t *testing.T) {
	prev := errorLog
	t.Cleanup(func() { errorLog = prev })

	l := logger.Nop()
	Router(fiber.New(), RouterDeps{JWTSecret: "s", Log: l})

	assert.Same(t, l, errorLog)
}
