package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Suministros-api/pkg/password"
)

func TestValidateStrength(t *testing.T) {
	cases := []struct {
		name string
		pw   string
		want error
	}{
		{"válida", "Abcdef1!", nil},
		{"válida larga", "Una-Contraseña-Larga-99", nil},
		{"muy corta", "Ab1!", password.ErrTooShort},
		{"corta por un carácter", "Abcde1!", password.ErrTooShort},
		{"sin mayúscula", "abcdef1!", password.ErrNoUpper},
		{"sin minúscula", "ABCDEF1!", password.ErrNoLower},
		{"sin dígito", "Abcdefg!", password.ErrNoDigit},
		{"sin especial", "Abcdefg1", password.ErrNoSpecial},
		{"vacía", "", password.ErrTooShort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := password.ValidateStrength(tc.pw)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestHashAndVerify(t *testing.T) {
	// Cost mínimo para que el test no sea lento
	hash, err := password.Hash("Abcdef1!", 4)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Abcdef1!", hash, "el hash nunca debe ser el texto plano")

	assert.True(t, password.Verify("Abcdef1!", hash))
	assert.False(t, password.Verify("Abcdef1?", hash))
	assert.False(t, password.Verify("", hash))
}

func TestHash_SaltDistinto(t *testing.T) {
	h1, err := password.Hash("Abcdef1!", 4)
	require.NoError(t, err)
	h2, err := password.Hash("Abcdef1!", 4)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "bcrypt saltea: dos hashes del mismo texto deben diferir")
}

func TestGenerateTemporary_CumpleLaPolitica(t *testing.T) {
	// La generada debe pasar siempre la misma política que valida el cambio
	// de contraseña, así el usuario puede iniciar sesión con ella.
	for i := 0; i < 20; i++ {
		pw, err := password.GenerateTemporary(12)
		require.NoError(t, err)
		assert.Len(t, pw, 12)
		assert.NoError(t, password.ValidateStrength(pw))
	}
}

func TestGenerateTemporary_LongitudMinima(t *testing.T) {
	pw, err := password.GenerateTemporary(3)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(pw), password.MinLength,
		"nunca genera por debajo de la longitud mínima")
}
