package auth

import (
	"testing"
	"time"

	"github.com/managejob/backend/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewManagerValidation(t *testing.T) {
	_, err := NewManager(config.JWTConfig{})
	require.Error(t, err)

	_, err = NewManager(config.JWTConfig{SigningKey: "key"})
	require.Error(t, err)

	m, err := NewManager(config.JWTConfig{
		SigningKey:      "key",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	})
	require.NoError(t, err)
	require.NotNil(t, m)
}

func TestJWTRoundTrip(t *testing.T) {
	m, err := NewManager(config.JWTConfig{
		SigningKey:      "test-signing-key",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	})
	require.NoError(t, err)

	userID := uuid.New()
	token, ttl, err := m.NewJWT(&userID)
	require.NoError(t, err)
	require.Equal(t, time.Minute, ttl)

	sub, err := m.Parse(token)
	require.NoError(t, err)
	require.Equal(t, userID.String(), sub)
}

func TestParseRejectsForeignKey(t *testing.T) {
	signer, err := NewManager(config.JWTConfig{
		SigningKey:      "key-one",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	})
	require.NoError(t, err)

	verifier, err := NewManager(config.JWTConfig{
		SigningKey:      "key-two",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	})
	require.NoError(t, err)

	userID := uuid.New()
	token, _, err := signer.NewJWT(&userID)
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.Error(t, err)
}

func TestValidateRefreshToken(t *testing.T) {
	m, err := NewManager(config.JWTConfig{
		SigningKey:      "key",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	})
	require.NoError(t, err)

	token, ttl, err := m.NewRefreshToken()
	require.NoError(t, err)
	require.Equal(t, time.Hour, ttl)

	id, err := m.ValidateRefreshToken(token.String())
	require.NoError(t, err)
	require.Equal(t, token, *id)

	_, err = m.ValidateRefreshToken("not-a-uuid")
	require.Error(t, err)
}
