package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/cropsight")
	t.Setenv("WATCHER_CROP_ID", "")
	t.Setenv("WATCHER_BASELINE_TEMP", "")
	t.Setenv("WATCHER_NUDGE_RATE", "")
	t.Setenv("WATCHER_RIPENING_DAYS", "")
	t.Setenv("WATCHER_START_WEEK", "")
	t.Setenv("DRY_RUN", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "tomato", cfg.CropID)
	assert.Equal(t, 24.0, cfg.BaselineTemp)
	assert.Equal(t, 0.25, cfg.NudgeRate)
	assert.Equal(t, 0.0, cfg.RipeningDays)
	assert.Equal(t, 1, cfg.StartWeek)
	assert.False(t, cfg.DryRun)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/cropsight")
	t.Setenv("WATCHER_CROP_ID", "chili")
	t.Setenv("WATCHER_BASELINE_TEMP", "26.5")
	t.Setenv("WATCHER_NUDGE_RATE", "0.5")
	t.Setenv("WATCHER_RIPENING_DAYS", "12.5")
	t.Setenv("WATCHER_START_WEEK", "3")
	t.Setenv("DRY_RUN", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "chili", cfg.CropID)
	assert.Equal(t, 26.5, cfg.BaselineTemp)
	assert.Equal(t, 0.5, cfg.NudgeRate)
	assert.Equal(t, 12.5, cfg.RipeningDays)
	assert.Equal(t, 3, cfg.StartWeek)
	assert.True(t, cfg.DryRun)
}

func TestLoadRejectsNegativeRipeningDays(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/cropsight")
	t.Setenv("WATCHER_RIPENING_DAYS", "-1")

	_, err := Load()
	assert.Error(t, err)
}
