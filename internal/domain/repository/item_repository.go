package repository

import "github.com/jhoicas/Suministros-api/internal/domain/entity"

// ItemFilter filtros para listados de artículos.
type ItemFilter struct {
	// Search aplica substring case-insensitive sobre name y sku.
	Search          string
	IncludeInactive bool
	Limit           int
	Offset          int
}

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetBySKU(sku string) (*entity.Item, error)
	List(filter ItemFilter) ([]*entity.Item, error)
}
