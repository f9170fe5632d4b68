package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultCropID       = "tomato"
	defaultBaselineTemp = 24.0
	defaultNudgeRate    = 0.25
	defaultWeek         = 1
	defaultRipeningDays = 0.0
)

// Config holds runtime configuration for the climate watcher.
type Config struct {
	DatabaseURL  string
	CropID       string
	BaselineTemp float64
	NudgeRate    float64
	StartWeek    int
	RipeningDays float64
	DryRun       bool
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := Config{
		CropID:       defaultCropID,
		BaselineTemp: defaultBaselineTemp,
		NudgeRate:    defaultNudgeRate,
		StartWeek:    defaultWeek,
		RipeningDays: defaultRipeningDays,
	}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return cfg, errors.New("DATABASE_URL is required")
	}

	if v := strings.TrimSpace(os.Getenv("WATCHER_CROP_ID")); v != "" {
		cfg.CropID = v
	}

	if v := strings.TrimSpace(os.Getenv("WATCHER_BASELINE_TEMP")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid WATCHER_BASELINE_TEMP: %w", err)
		}
		cfg.BaselineTemp = f
	}

	if v := strings.TrimSpace(os.Getenv("WATCHER_NUDGE_RATE")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid WATCHER_NUDGE_RATE: %w", err)
		}
		if f < 0 || f > 1 {
			return cfg, fmt.Errorf("WATCHER_NUDGE_RATE must be in [0,1], got %s", v)
		}
		cfg.NudgeRate = f
	}

	if v := strings.TrimSpace(os.Getenv("WATCHER_RIPENING_DAYS")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return cfg, fmt.Errorf("invalid WATCHER_RIPENING_DAYS: %s", v)
		}
		cfg.RipeningDays = f
	}

	if v := strings.TrimSpace(os.Getenv("WATCHER_START_WEEK")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("invalid WATCHER_START_WEEK: %s", v)
		}
		cfg.StartWeek = n
	}

	dryRun := strings.TrimSpace(os.Getenv("DRY_RUN"))
	cfg.DryRun = dryRun == "1" || strings.EqualFold(dryRun, "true")

	return cfg, nil
}
