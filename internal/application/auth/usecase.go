package auth

import (
	"fmt"
	"time"

	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
	"github.com/jhoicas/Suministros-api/pkg/jwt"
	"github.com/jhoicas/Suministros-api/pkg/password"
	"github.com/jhoicas/Suministros-api/pkg/validator"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y rotación de contraseña.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	jwtCfg     JWTConfig
	bcryptCost int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, bcryptCost int) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, bcryptCost: bcryptCost}
}

// Login verifica email/password y emite un JWT con el role y el flag
// must_change_password VIGENTES del usuario. Usuario inexistente, inactivo o
// contraseña incorrecta retornan todos ErrInvalidCredentials: la respuesta
// idéntica evita enumeración de cuentas y filtración del estado activo.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !validator.ValidEmail(in.Email) {
		return nil, fmt.Errorf("%w: email malformado", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	now := time.Now()
	if err := uc.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.MustChangePassword, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ChangePassword rota la contraseña del usuario autenticado. Verifica la
// contraseña actual, valida la fortaleza de la nueva y limpia
// MustChangePassword. Los tokens ya emitidos NO se invalidan: el flag viaja
// en el token y solo se refresca en el próximo login.
func (uc *AuthUseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if !user.CanChangePassword {
		return domain.ErrForbidden
	}
	if !password.Verify(in.CurrentPassword, user.PasswordHash) {
		return fmt.Errorf("%w: contraseña actual incorrecta", domain.ErrInvalidInput)
	}
	if err := password.ValidateStrength(in.NewPassword); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWeakPassword, err)
	}
	hash, err := password.Hash(in.NewPassword, uc.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.MustChangePassword = false
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

// ToUserResponse proyecta un usuario sin el hash de contraseña.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		Name:               u.Name,
		Role:               u.Role,
		Department:         u.Department,
		IsActive:           u.IsActive,
		MustChangePassword: u.MustChangePassword,
		LastLoginAt:        u.LastLoginAt,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}
