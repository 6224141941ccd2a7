package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/configs"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

func TestUsernameRegex(t *testing.T) {
	valid := []string{"budi", "siti_99", "GURU_matematika", "a1"}
	for _, u := range valid {
		assert.True(t, usernameRegex.MatchString(u), u)
	}

	invalid := []string{"", "budi santoso", "budi@sekolah", "budi-s", "ナルト"}
	for _, u := range invalid {
		assert.False(t, usernameRegex.MatchString(u), u)
	}
}

func TestIssueAccessToken_Claims(t *testing.T) {
	configs.JWTSecret = "test-secret"

	user := userModel.UserModel{
		ID:       uuid.New(),
		Username: "bu_rina",
		Role:     "guru",
	}

	tokenStr, err := issueAccessToken(user)
	require.NoError(t, err)

	parsed, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), claims["id"])
	assert.Equal(t, "bu_rina", claims["username"])
	assert.Equal(t, "guru", claims["role"])
	assert.NotZero(t, claims["exp"])
}
