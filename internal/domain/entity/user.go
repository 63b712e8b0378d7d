package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin             = "ADMIN"
	RoleFinance           = "FINANCE"
	RoleProcurement       = "PROCUREMENT"
	RoleStorekeeper       = "STOREKEEPER"
	RoleDepartmentManager = "DEPARTMENT_MANAGER"
	RoleStaff             = "STAFF"
)

// ValidRole indica si role pertenece al conjunto de roles conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleFinance, RoleProcurement, RoleStorekeeper, RoleDepartmentManager, RoleStaff:
		return true
	}
	return false
}

// User representa un usuario del sistema. Los usuarios nunca se eliminan
// físicamente: se desactivan con IsActive=false.
type User struct {
	ID                 string
	Email              string
	PasswordHash       string // bcrypt hash, nunca plano en dominio después de persistir
	Name               string
	Role               string
	Department         string // opcional
	IsActive           bool
	MustChangePassword bool // true hasta que el usuario rote la contraseña temporal
	CanChangePassword  bool // false bloquea el cambio de contraseña self-service
	LastLoginAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
