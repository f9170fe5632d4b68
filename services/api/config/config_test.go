package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("API_PORT", "")
	t.Setenv("API_HISTORY_LIMIT", "")
	t.Setenv("API_BEARER_TOKEN", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("DEFAULT_CROP_ID", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.ListenAddr())
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, "tomato", cfg.DefaultCropID)
	assert.Equal(t, 50, cfg.HistoryLimit)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.GeminiAPIKey)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/cropsight")
	t.Setenv("PORT", "9090")
	t.Setenv("API_HISTORY_LIMIT", "10")
	t.Setenv("API_BEARER_TOKEN", "sekret")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("DEFAULT_CROP_ID", "chili")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/cropsight", cfg.DatabaseURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, "sekret", cfg.BearerToken)
	assert.Equal(t, "gemini-1.5-pro", cfg.GeminiModel)
	assert.Equal(t, "chili", cfg.DefaultCropID)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadHistoryLimit(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("API_PORT", "")
	t.Setenv("API_HISTORY_LIMIT", "-3")

	_, err := Load()
	assert.Error(t, err)
}
