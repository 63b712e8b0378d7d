// Package password implementa la política de contraseñas: validación de
// fortaleza, hash/verify con bcrypt y generación de contraseñas temporales.
package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Violaciones de fortaleza. Cada una nombra el requisito incumplido.
var (
	ErrTooShort  = errors.New("la contraseña debe tener al menos 8 caracteres")
	ErrNoUpper   = errors.New("la contraseña debe incluir al menos una mayúscula")
	ErrNoLower   = errors.New("la contraseña debe incluir al menos una minúscula")
	ErrNoDigit   = errors.New("la contraseña debe incluir al menos un dígito")
	ErrNoSpecial = errors.New("la contraseña debe incluir al menos un carácter especial")
)

// DefaultCost costo bcrypt por defecto; configurable vía SecurityConfig.
const DefaultCost = bcrypt.DefaultCost

// MinLength longitud mínima exigida por ValidateStrength.
const MinLength = 8

// alphabet caracteres usados por GenerateTemporary.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%&*-_+="

// ValidateStrength valida la fortaleza de una contraseña. Retorna nil si
// cumple la política o la violación específica en caso contrario.
// Pura y determinística, sin efectos secundarios.
func ValidateStrength(pw string) error {
	if len(pw) < MinLength {
		return ErrTooShort
	}
	var upper, lower, digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	switch {
	case !upper:
		return ErrNoUpper
	case !lower:
		return ErrNoLower
	case !digit:
		return ErrNoDigit
	case !special:
		return ErrNoSpecial
	}
	return nil
}

// Hash produce un digest bcrypt salteado del texto plano.
func Hash(plain string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify compara texto plano contra un digest bcrypt. La comparación
// constant-time la aporta bcrypt.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

// GenerateTemporary genera una contraseña temporal de length caracteres por
// rejection sampling: dibuja caracteres aleatorios del alfabeto hasta que el
// resultado pasa ValidateStrength. Usa crypto/rand (nunca math/rand). La
// probabilidad de rechazo por intento está acotada muy por debajo de 1, así
// que el bucle termina casi seguramente; los callers no deben asumir un
// número fijo de intentos.
func GenerateTemporary(length int) (string, error) {
	if length < MinLength {
		length = MinLength
	}
	max := big.NewInt(int64(len(alphabet)))
	for {
		var sb strings.Builder
		sb.Grow(length)
		for i := 0; i < length; i++ {
			n, err := rand.Int(rand.Reader, max)
			if err != nil {
				return "", fmt.Errorf("generar contraseña temporal: %w", err)
			}
			sb.WriteByte(alphabet[n.Int64()])
		}
		candidate := sb.String()
		if ValidateStrength(candidate) == nil {
			return candidate, nil
		}
	}
}
