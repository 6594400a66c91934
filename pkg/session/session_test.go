package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUnsign(t *testing.T) {
	token, err := Sign("dev-secret", Value, time.Hour)
	require.NoError(t, err)

	v, err := Unsign("dev-secret", token)
	require.NoError(t, err)
	assert.Equal(t, Value, v)
	assert.True(t, Valid("dev-secret", token))
}

func TestUnsign_SecretDistinto(t *testing.T) {
	token, err := Sign("dev-secret", Value, time.Hour)
	require.NoError(t, err)

	_, err = Unsign("otro", token)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.False(t, Valid("otro", token))
}

func TestValid_SubjectDistinto(t *testing.T) {
	token, err := Sign("dev-secret", "admin", time.Hour)
	require.NoError(t, err)
	assert.False(t, Valid("dev-secret", token))
}

func TestValid_Expirado(t *testing.T) {
	token, err := Sign("dev-secret", Value, -time.Minute)
	require.NoError(t, err)
	assert.False(t, Valid("dev-secret", token))
}

func TestValid_Basura(t *testing.T) {
	assert.False(t, Valid("dev-secret", ""))
	assert.False(t, Valid("dev-secret", "ok"))
	assert.False(t, Valid("dev-secret", "a.b.c"))
}

func TestSign_SinSecret(t *testing.T) {
	_, err := Sign("", Value, time.Hour)
	assert.Error(t, err)
}
