package middlewareprovider

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	userID := uuid.New().String()
	roles := []string{"asset_manager"}

	token, err := GenerateJWT(userID, roles)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotUser, gotRoles, err := ParseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotUser)
	assert.Equal(t, roles, gotRoles)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	userID := uuid.New().String()

	token, err := GenerateRefreshToken(userID)
	require.NoError(t, err)

	gotUser, err := ParseRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotUser)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, _, err := ParseJWT("not-a-token")
	assert.Error(t, err)
}
