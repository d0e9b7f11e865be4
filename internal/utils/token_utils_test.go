package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundtrip(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"

	token, err := GenerateJWT("user-123", "SALESMAN", secret, time.Hour, "khata-test")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "SALESMAN", claims.Role)
	assert.Equal(t, "khata-test", claims.Issuer)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-123", "SALESMAN", "secret-one", time.Hour, "khata-test")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret-two")
	assert.Error(t, err)
}

func TestRefreshTokenHash(t *testing.T) {
	raw, err := GenerateSecureRandomString(32)
	require.NoError(t, err)

	hash := HashRefreshToken(raw)
	assert.NotEqual(t, raw, hash)
	assert.True(t, CompareRefreshTokenHash(raw, hash))
	assert.False(t, CompareRefreshTokenHash(raw+"x", hash))
}

func TestFormatRupees(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Rs. 0"},
		{7, "Rs. 7"},
		{950, "Rs. 950"},
		{1234, "Rs. 1,234"},
		{1234567, "Rs. 1,234,567"},
		{-50, "Rs. -50"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatRupees(decimal.NewFromInt(tc.amount)), "amount %d", tc.amount)
	}
}
