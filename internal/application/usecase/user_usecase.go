package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Suministros-api/internal/application/auth"
	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/application/ports"
	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
	"github.com/jhoicas/Suministros-api/pkg/logger"
	"github.com/jhoicas/Suministros-api/pkg/password"
)

// UserUseCase altas y administración de usuarios (solo admin).
type UserUseCase struct {
	userRepo   repository.UserRepository
	notifier   ports.Notifier
	log        *logger.Logger
	bcryptCost int
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, notifier ports.Notifier, log *logger.Logger, bcryptCost int) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, notifier: notifier, log: log, bcryptCost: bcryptCost}
}

// Create da de alta un usuario con una contraseña temporal generada. El
// usuario nace con MustChangePassword=true: la primera sesión solo puede
// rotar la contraseña. La credencial temporal se envía por correo
// best-effort; un fallo de entrega se registra y se traga, nunca falla el
// alta.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	temporary, err := password.GenerateTemporary(12)
	if err != nil {
		return nil, err
	}
	hash, err := password.Hash(temporary, uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:                 uuid.New().String(),
		Email:              in.Email,
		PasswordHash:       hash,
		Name:               in.Name,
		Role:               in.Role,
		Department:         in.Department,
		IsActive:           true,
		MustChangePassword: true,
		CanChangePassword:  true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	if err := uc.notifier.SendTemporaryPassword(user.Email, user.Name, temporary); err != nil {
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("no se pudo enviar la credencial temporal")
	}
	return auth.ToUserResponse(user), nil
}

// GetByID obtiene la proyección de un usuario.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return auth.ToUserResponse(user), nil
}

// Update aplica un patch parcial (role, department, is_active). El patch no
// toca tokens ya emitidos: el role y el flag de rotación viajan en el token
// hasta que expire o se reemita.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Department != nil {
		user.Department = *in.Department
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
