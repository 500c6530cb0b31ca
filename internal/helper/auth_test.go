package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	auth := SetupAuth("unit-secret")

	token, err := auth.GenerateToken("admin")
	require.NoError(t, err)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	t.Run("bearer prefix accepted", func(t *testing.T) {
		claims, err := auth.VerifyToken("Bearer " + token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		other := SetupAuth("other-secret")
		_, err := other.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("empty token rejected", func(t *testing.T) {
		_, err := auth.VerifyToken("")
		assert.Error(t, err)
	})

	t.Run("empty username rejected", func(t *testing.T) {
		_, err := auth.GenerateToken("")
		assert.Error(t, err)
	})
}
