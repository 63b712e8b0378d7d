package jwt_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Suministros-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "suministros-api-test"
)

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "STOREKEEPER", true, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.Subject)
	assert.Equal(t, "STOREKEEPER", claims.Role)
	assert.True(t, claims.MustChangePassword,
		"el flag de rotación debe viajar en el token")
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestParse_TokenExpirado_ErrInvalidToken(t *testing.T) {
	// Expiración -1 minuto: ya expirado al emitirse
	tok, err := pkgjwt.Generate(testSecret, testUserID, "ADMIN", false, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.True(t, errors.Is(err, pkgjwt.ErrInvalidToken),
		"token expirado debe reportarse como ErrInvalidToken, no como causa distinguible")
}

func TestParse_SecretIncorrecto_ErrInvalidToken(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "ADMIN", false, testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.True(t, errors.Is(err, pkgjwt.ErrInvalidToken))
}

func TestParse_TokenManipulado_ErrInvalidToken(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "STAFF", false, testIssuer, 60)
	require.NoError(t, err)

	// Alterar el payload invalida la firma
	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	_, err = pkgjwt.Parse(testSecret, tampered)
	assert.True(t, errors.Is(err, pkgjwt.ErrInvalidToken))
}

func TestParse_Malformado_ErrInvalidToken(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "no.es.un.jwt")
	assert.True(t, errors.Is(err, pkgjwt.ErrInvalidToken))
}

func TestGenerate_SecretVacio_Error(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "ADMIN", false, testIssuer, 60)
	assert.Error(t, err)
}
