package auth

import (
	"testing"
	"time"

	"github.com/jhoicas/prepperstore-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin_PasswordCorrecto(t *testing.T) {
	uc, err := NewAuthUseCase(Config{Password: "hunter2", CookieSecret: "dev-secret"})
	require.NoError(t, err)

	token, err := uc.Login("hunter2")
	require.NoError(t, err)
	assert.True(t, uc.Authenticated(token))
	assert.Equal(t, 60*24*time.Hour, uc.MaxAge())
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, err := NewAuthUseCase(Config{Password: "hunter2", CookieSecret: "dev-secret"})
	require.NoError(t, err)

	_, err = uc.Login("nope")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_SinPasswordConfigurado(t *testing.T) {
	uc, err := NewAuthUseCase(Config{CookieSecret: "dev-secret"})
	require.NoError(t, err)

	_, err = uc.Login("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login("cualquiera")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestNewAuthUseCase_HashYaCalculado(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	uc, err := NewAuthUseCase(Config{Password: string(hash), CookieSecret: "dev-secret"})
	require.NoError(t, err)

	_, err = uc.Login("hunter2")
	assert.NoError(t, err)
}

func TestAuthenticated_OtroSecret(t *testing.T) {
	a, err := NewAuthUseCase(Config{Password: "x", CookieSecret: "uno"})
	require.NoError(t, err)
	b, err := NewAuthUseCase(Config{Password: "x", CookieSecret: "dos"})
	require.NoError(t, err)

	token, err := a.Login("x")
	require.NoError(t, err)
	assert.False(t, b.Authenticated(token))
	assert.False(t, a.Authenticated(""))
}
