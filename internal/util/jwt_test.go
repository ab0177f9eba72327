package util

import (
	"testing"
	"time"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := &model.User{ID: 11, Email: "user@example.com"}
	secret := "test-secret-test-secret-test-secret"

	token, err := GenerateJWT(user, secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(11), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestParseJWTWrongSecret(t *testing.T) {
	user := &model.User{ID: 11, Email: "user@example.com"}

	token, err := GenerateJWT(user, "secret-one", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret-two")
	assert.Error(t, err)
}

func TestParseJWTRejectsForeignSigningMethod(t *testing.T) {
	secret := "test-secret-test-secret-test-secret"
	claims := &Claims{UserID: 11, Email: "user@example.com", RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}

	// Correctly signed, but not with the one method tokens are issued
	// with.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = ParseJWT(token, secret)
	assert.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	user := &model.User{ID: 11, Email: "user@example.com"}

	token, err := GenerateJWT(user, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}
