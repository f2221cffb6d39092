package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubulgithub/College-Payment-Management/app/config"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-admin")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-admin", hash)

	assert.True(t, CheckPasswordHash("s3cret-admin", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
	assert.False(t, CheckPasswordHash("s3cret-admin", "not-a-bcrypt-hash"))
}

func TestGenerateAndValidateJWT(t *testing.T) {
	cfg := config.JWTConfig{
		Secret: []byte("test-signing-key"),
		Expiry: time.Hour,
	}

	token, err := GenerateJWT(cfg, "admin@college.edu")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "admin@college.edu", claims.Email)
	assert.Equal(t, "college-payment-management", claims.Issuer)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	cfg := config.JWTConfig{
		Secret: []byte("test-signing-key"),
		Expiry: time.Hour,
	}
	token, err := GenerateJWT(cfg, "admin@college.edu")
	require.NoError(t, err)

	other := config.JWTConfig{
		Secret: []byte("different-key"),
		Expiry: time.Hour,
	}
	_, err = ValidateJWT(other, token)
	assert.Error(t, err)
}

func TestValidateJWTExpired(t *testing.T) {
	cfg := config.JWTConfig{
		Secret: []byte("test-signing-key"),
		Expiry: -time.Minute,
	}
	token, err := GenerateJWT(cfg, "admin@college.edu")
	require.NoError(t, err)

	_, err = ValidateJWT(cfg, token)
	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	cfg := config.JWTConfig{
		Secret: []byte("test-signing-key"),
		Expiry: time.Hour,
	}
	_, err := ValidateJWT(cfg, "not.a.token")
	assert.Error(t, err)
}
