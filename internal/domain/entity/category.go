package entity

import "time"

// Category representa una categoría de artículos. Name es único a nivel global.
type Category struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
