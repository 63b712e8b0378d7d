package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario. Code es único.
type Warehouse struct {
	ID        string
	Name      string
	Code      string
	Location  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
