package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateJWT("42", RoleAdmin, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.True(t, claims.IsAdmin())
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("42", RoleAdmin, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "other")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Expired(t *testing.T) {
	token, err := GenerateJWT("42", "editor", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "secret")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerate_RequiresInputs(t *testing.T) {
	_, err := GenerateJWT("", RoleAdmin, "secret", time.Hour)
	require.Error(t, err)
	_, err = GenerateJWT("1", RoleAdmin, "", time.Hour)
	require.Error(t, err)
	_, err = ValidateJWT("", "secret")
	require.ErrorIs(t, err, ErrInvalidToken)
}
