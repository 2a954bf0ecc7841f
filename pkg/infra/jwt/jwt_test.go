package jwt_test

import (
	"testing"

	"github.com/parceltrack/parceltrack/pkg/config"
	"github.com/parceltrack/parceltrack/pkg/infra/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_CreateAndDecodeToken(t *testing.T) {
	manager := jwt.NewManager(&config.ServerConfig{SecretKey: "test-secret"})

	token, err := manager.CreateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestManager_DecodeToken_WrongSecret(t *testing.T) {
	manager := jwt.NewManager(&config.ServerConfig{SecretKey: "test-secret"})
	other := jwt.NewManager(&config.ServerConfig{SecretKey: "other-secret"})

	token, err := manager.CreateToken("user-123")
	require.NoError(t, err)

	_, err = other.DecodeToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestManager_DecodeToken_Garbage(t *testing.T) {
	manager := jwt.NewManager(&config.ServerConfig{SecretKey: "test-secret"})

	_, err := manager.DecodeToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
