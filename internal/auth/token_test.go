package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/it23631960/pearl-logistics-admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef")

func TestAuthToken_CreateAndVerify(t *testing.T) {
	at := NewAuthToken(testKey)

	tokenString, err := at.CreateToken(7, "admin@pearl.lk")
	require.NoError(t, err)

	payload, err := at.VerifyToken(tokenString)
	require.NoError(t, err)

	assert.Equal(t, int64(7), payload.UserID)
	assert.Equal(t, "admin@pearl.lk", payload.Email)
	assert.True(t, payload.ExpiredAt.After(time.Now()))
}

func TestAuthToken_ExpiredToken(t *testing.T) {
	at := NewAuthToken(testKey)

	claims := tokenClaims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin@pearl.lk",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
	require.NoError(t, err)

	_, err = at.VerifyToken(tokenString)
	assert.ErrorIs(t, err, models.ErrExpiredToken)
}

func TestAuthToken_WrongKey(t *testing.T) {
	at := NewAuthToken(testKey)

	other := NewAuthToken([]byte("fedcba9876543210"))
	tokenString, err := other.CreateToken(7, "admin@pearl.lk")
	require.NoError(t, err)

	_, err = at.VerifyToken(tokenString)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestAuthToken_Garbage(t *testing.T) {
	at := NewAuthToken(testKey)

	_, err := at.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}
