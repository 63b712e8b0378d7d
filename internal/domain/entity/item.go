package entity

import "time"

// Item representa un artículo del catálogo. SKU es único cuando no está vacío.
// La categoría debe existir y estar activa al crear el artículo; una categoría
// puede desactivarse después sin efecto en cascada sobre sus artículos.
type Item struct {
	ID          string
	CategoryID  string
	Name        string
	SKU         string // opcional
	Unit        string // pcs, kg, box, ...
	IsTrackable bool   // solo los artículos trackeables participan del ledger de stock
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
