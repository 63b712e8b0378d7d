package repository

import (
	"time"

	"github.com/jhoicas/Suministros-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Get* retorna (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// UpdateLastLogin registra el instante del último login exitoso.
	UpdateLastLogin(id string, at time.Time) error
	List(limit, offset int) ([]*entity.User, error)
}
