package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint
// único (23505). Los constraints de la DB son el respaldo del chequeo
// explícito de unicidad que hacen los casos de uso.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// uuidParam convierte un filtro opcional de ID en parámetro anulable: NULL
// cuando está vacío. Las queries lo usan como $n::uuid para que el tipo del
// parámetro sea uuid y no text (uuid = text no compila en Postgres).
func uuidParam(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
