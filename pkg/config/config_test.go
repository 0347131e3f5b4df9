package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"around-backend/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults with secret set", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "test-secret", cfg.JWTSecret)
		assert.Equal(t, 168*time.Hour, cfg.TokenExpiry)
		assert.Equal(t, 5*time.Second, cfg.MongoOpTimeout)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("PORT", "9090")
		t.Setenv("TOKEN_EXPIRY", "24h")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, 24*time.Hour, cfg.TokenExpiry)
	})

	t.Run("missing secret fails", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()
		require.Error(t, err)
	})
}
