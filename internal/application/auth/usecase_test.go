package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Suministros-api/internal/application/auth"
	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Suministros-api/pkg/jwt"
	"github.com/jhoicas/Suministros-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
	updated []*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
	for _, u := range users {
		r.byID[u.ID] = u
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	r.updated = append(r.updated, u)
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(id string, at time.Time) error {
	if u, ok := r.byID[id]; ok {
		u.LastLoginAt = &at
	}
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "suministros-api-test"
	// Cost mínimo de bcrypt para tests rápidos
	testCost = 4
)

func testUser(t *testing.T, plain string) *entity.User {
	t.Helper()
	hash, err := password.Hash(plain, testCost)
	require.NoError(t, err)
	now := time.Now()
	return &entity.User{
		ID:                "00000000-0000-0000-0000-000000000001",
		Email:             "ana@example.com",
		PasswordHash:      hash,
		Name:              "Ana",
		Role:              entity.RoleStorekeeper,
		IsActive:          true,
		CanChangePassword: true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func newUseCase(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	}, testCost)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	user := testUser(t, "Abcdef1!")
	repo := newFakeUserRepo(user)
	uc := newUseCase(repo)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "Abcdef1!"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	// El token debe llevar el role y el flag vigentes del usuario
	claims, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, entity.RoleStorekeeper, claims.Role)
	assert.False(t, claims.MustChangePassword)

	// El login registra el instante del último acceso
	assert.NotNil(t, user.LastLoginAt)
	// La respuesta nunca incluye el hash
	assert.Equal(t, user.Email, resp.User.Email)
}

func TestLogin_FlagDeRotacionViajaEnElToken(t *testing.T) {
	user := testUser(t, "Abcdef1!")
	user.MustChangePassword = true
	uc := newUseCase(newFakeUserRepo(user))

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "Abcdef1!"})
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.True(t, claims.MustChangePassword)
}

// Usuario inexistente, inactivo y contraseña incorrecta deben retornar el
// MISMO error: nada en la respuesta permite enumerar cuentas.
func TestLogin_FallosIndistinguibles(t *testing.T) {
	inactive := testUser(t, "Abcdef1!")
	inactive.IsActive = false
	uc := newUseCase(newFakeUserRepo(inactive))

	cases := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"usuario inexistente", dto.LoginRequest{Email: "nadie@example.com", Password: "Abcdef1!"}},
		{"usuario inactivo", dto.LoginRequest{Email: "ana@example.com", Password: "Abcdef1!"}},
		{"contraseña incorrecta", dto.LoginRequest{Email: "ana@example.com", Password: "Incorrecta1!"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Login(tc.req)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

func TestLogin_EmailMalformado(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	_, err := uc.Login(dto.LoginRequest{Email: "no-es-un-email", Password: "Abcdef1!"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// ChangePassword
// ──────────────────────────────────────────────────────────────────────────────

func TestChangePassword_Exitoso_LimpiaFlag(t *testing.T) {
	user := testUser(t, "Temporal1!")
	user.MustChangePassword = true
	repo := newFakeUserRepo(user)
	uc := newUseCase(repo)

	err := uc.ChangePassword(user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "Temporal1!",
		NewPassword:     "Definitiva2@",
	})
	require.NoError(t, err)

	assert.False(t, user.MustChangePassword, "rotar debe limpiar el flag")
	assert.True(t, password.Verify("Definitiva2@", user.PasswordHash))
	assert.False(t, password.Verify("Temporal1!", user.PasswordHash))
	require.NotEmpty(t, repo.updated, "el cambio debe persistirse")

	// El próximo login emite un token con el flag ya en false
	resp, err := uc.Login(dto.LoginRequest{Email: user.Email, Password: "Definitiva2@"})
	require.NoError(t, err)
	claims, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.False(t, claims.MustChangePassword)
}

func TestChangePassword_CuentaBloqueada(t *testing.T) {
	user := testUser(t, "Abcdef1!")
	user.CanChangePassword = false
	uc := newUseCase(newFakeUserRepo(user))

	err := uc.ChangePassword(user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "Abcdef1!",
		NewPassword:     "Definitiva2@",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestChangePassword_ActualIncorrecta(t *testing.T) {
	user := testUser(t, "Abcdef1!")
	uc := newUseCase(newFakeUserRepo(user))

	err := uc.ChangePassword(user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "Incorrecta9#",
		NewPassword:     "Definitiva2@",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	// La contraseña no debe haberse tocado
	assert.True(t, password.Verify("Abcdef1!", user.PasswordHash))
}

func TestChangePassword_NuevaDebil(t *testing.T) {
	user := testUser(t, "Abcdef1!")
	uc := newUseCase(newFakeUserRepo(user))

	err := uc.ChangePassword(user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "Abcdef1!",
		NewPassword:     "corta",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWeakPassword)
	assert.False(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestChangePassword_UsuarioInexistente(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	err := uc.ChangePassword("no-existe", dto.ChangePasswordRequest{
		CurrentPassword: "Abcdef1!",
		NewPassword:     "Definitiva2@",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
