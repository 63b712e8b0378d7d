package repository

import "github.com/jhoicas/Suministros-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// GetByName busca por nombre exacto; se usa para el chequeo de unicidad
	// previo al insert (el constraint único de la DB queda como respaldo).
	GetByName(name string) (*entity.Category, error)
	List(includeInactive bool, limit, offset int) ([]*entity.Category, error)
}
