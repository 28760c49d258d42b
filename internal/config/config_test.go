package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing API key is an error", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	})

	t.Run("defaults apply when only the key is set", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("GEMINI_MODEL", "")
		t.Setenv("PORT", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("CACHE_TTL", "")
		t.Setenv("FETCH_TIMEOUT", "")
		t.Setenv("MAX_POSTS", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, time.Hour, cfg.CacheTTL)
		assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
		assert.Equal(t, 8, cfg.MaxPosts)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
		t.Setenv("PORT", "9090")
		t.Setenv("CACHE_TTL", "10m")
		t.Setenv("MAX_POSTS", "5")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "gemini-1.5-pro", cfg.GeminiModel)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
		assert.Equal(t, 5, cfg.MaxPosts)
	})

	t.Run("unparseable values fall back to defaults", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("CACHE_TTL", "not-a-duration")
		t.Setenv("MAX_POSTS", "-3")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, time.Hour, cfg.CacheTTL)
		assert.Equal(t, 8, cfg.MaxPosts)
	})
}
