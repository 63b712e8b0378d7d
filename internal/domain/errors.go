package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrConflict           = errors.New("el recurso ya existe")
	ErrForbidden          = errors.New("acceso denegado")
	ErrWeakPassword       = errors.New("contraseña débil")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)
