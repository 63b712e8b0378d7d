package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken es el único error que retorna Parse ante un token
// malformado, con firma incorrecta o expirado. Las tres causas son
// indistinguibles para el caller a propósito: siempre mapean a un fallo de
// autenticación y nunca revelan cuál fue.
var ErrInvalidToken = errors.New("jwt: token inválido")

// Claims incluye los claims estándar JWT más los campos propios de la
// aplicación. Role y MustChangePassword viajan en el token para que el
// middleware decida sin consultar la DB; el flag queda congelado al momento
// de emisión (ver nota de staleness en el middleware).
type Claims struct {
	jwt.RegisteredClaims
	Role               string `json:"role"`
	MustChangePassword bool   `json:"must_change_password"`
}

// Generate genera un token JWT firmado (HS256) con subject=userID, role y
// el flag de rotación de contraseña.
func Generate(secret, userID, role string, mustChangePassword bool, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Role:               role,
		MustChangePassword: mustChangePassword,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los claims. Retorna ErrInvalidToken ante
// cualquier causa de fallo (malformado, firma incorrecta, expirado).
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, ErrInvalidToken
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
