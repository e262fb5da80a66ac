package utils_test

import (
	"strings"
	"testing"
	"time"

	"bistro-boss/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_Generate(t *testing.T) {
	t.Run("Should issue a token that expires after the TTL", func(t *testing.T) {
		issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		tokens := utils.NewTokenManager("secret", time.Hour).WithClock(func() time.Time { return issuedAt })

		token, expiresAt, err := tokens.Generate("a@x.io")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, issuedAt.Add(time.Hour), expiresAt)

		claims, err := tokens.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "a@x.io", claims.Email)
	})

	t.Run("Should refuse an empty email", func(t *testing.T) {
		tokens := utils.NewTokenManager("secret", time.Hour)

		_, _, err := tokens.Generate("")
		assert.Error(t, err)
	})
}

func TestTokenManager_Validate(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tokens := utils.NewTokenManager("secret", time.Hour).WithClock(func() time.Time { return issuedAt })

	token, _, err := tokens.Generate("a@x.io")
	require.NoError(t, err)

	t.Run("Should accept a token just before expiry", func(t *testing.T) {
		later := tokens.WithClock(func() time.Time { return issuedAt.Add(59 * time.Minute) })

		claims, err := later.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "a@x.io", claims.Email)
	})

	t.Run("Should reject an expired token", func(t *testing.T) {
		later := tokens.WithClock(func() time.Time { return issuedAt.Add(61 * time.Minute) })

		_, err := later.Validate(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		other := utils.NewTokenManager("other", time.Hour).WithClock(func() time.Time { return issuedAt })

		_, err := other.Validate(token)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("Should reject a tampered token", func(t *testing.T) {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + "." + parts[1] + "x." + parts[2]

		_, err := tokens.Validate(tampered)
		assert.Error(t, err)
	})

	t.Run("Should reject a token with another algorithm", func(t *testing.T) {
		claims := utils.Claims{
			Email: "a@x.io",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
			},
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = tokens.Validate(unsigned)
		assert.Error(t, err)
	})

	t.Run("Should reject a token without expiry", func(t *testing.T) {
		claims := utils.Claims{Email: "a@x.io"}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = tokens.Validate(signed)
		assert.Error(t, err)
	})
}
