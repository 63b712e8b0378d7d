package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/pkg/jwt"
)

// Locals keys para la identidad autenticada en Fiber.
const (
	LocalUserID     = "user_id"
	LocalRole       = "role"
	LocalMustChange = "must_change_password"
)

// unauthenticated respuesta única para todo fallo de autenticación. Header
// ausente, header malformado y token inválido/expirado se reportan idéntico:
// no se filtra cuál fue la causa.
func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHENTICATED", "autenticación requerida"))
}

// AuthMiddleware valida el Bearer Token JWT y carga la identidad en
// c.Locals. Primer eslabón de la cadena de guards: si falla, la petición
// termina acá.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthenticated(c)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthenticated(c)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthenticated(c)
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthenticated(c)
		}
		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalMustChange, claims.MustChangePassword)
		return c.Next()
	}
}

// RequireSession exige que AuthMiddleware ya haya poblado la identidad.
// Capa redundante de defensa para rutas que pudieran montarse sin el
// middleware de auth.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == "" {
			return unauthenticated(c)
		}
		return c.Next()
	}
}

// RequirePasswordChanged rechaza con 403 mientras el flag
// must_change_password del TOKEN sea true. El flag se fija al emitir el
// token y no se relee de la DB: menos lecturas por request a cambio de
// staleness — si un admin resetea el flag, los tokens ya emitidos siguen
// bloqueados (o habilitados) hasta expirar o reemitirse. La única ruta
// protegida sin este guard es el cambio de contraseña.
func RequirePasswordChanged() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if mustChange, _ := c.Locals(LocalMustChange).(bool); mustChange {
			return c.Status(fiber.StatusForbidden).JSON(dto.Err(
				"PASSWORD_ROTATION_REQUIRED", "debe cambiar su contraseña temporal antes de continuar"))
		}
		return c.Next()
	}
}

// RequireRole rechaza con 403 si el rol del token no pertenece al conjunto
// permitido para la operación.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return unauthenticated(c)
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Err("FORBIDDEN", "rol sin permiso para esta operación"))
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
