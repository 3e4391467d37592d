package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	t.Parallel()

	const secret = "super-secret"
	userID := "65a1b2c3d4e5f6a7b8c9d0e1"

	tok, err := GenerateToken(userID, secret)
	require.NoError(t, err)

	got, err := VerifyToken(tok, secret)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u1", "right-secret")
	require.NoError(t, err)

	_, err = VerifyToken(tok, "wrong-secret")
	require.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	const secret = "secret"
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	tok, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = VerifyToken(tok, secret)
	require.Error(t, err)
}

func TestVerifyToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := VerifyToken("not.a.jwt", "k")
	require.Error(t, err)
}

func TestVerifyToken_MissingSubject(t *testing.T) {
	t.Parallel()

	const secret = "secret"
	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tok, err := noSubject.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = VerifyToken(tok, secret)
	require.ErrorIs(t, err, ErrInvalidToken)
}
