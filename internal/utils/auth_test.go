package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mandikhata/trade_ledger_app/internal/utils"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, utils.CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-pass", hash))
	assert.False(t, utils.CheckPasswordHash("s3cret-pass", "not-a-bcrypt-hash"))
}

func TestGenerateAndValidateJWT(t *testing.T) {
	secret := "unit-test-secret"
	token, expiresAt, err := utils.GenerateJWT("admin", secret, time.Hour, "trade-ledger-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "trade-ledger-test", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, _, err := utils.GenerateJWT("admin", "right-secret", time.Hour, "trade-ledger-test")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "wrong-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, _, err := utils.GenerateJWT("admin", "secret", -time.Minute, "trade-ledger-test")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
