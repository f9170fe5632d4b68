package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the REST API.
type Config struct {
	DatabaseURL   string
	Port          int
	BearerToken   string
	GeminiAPIKey  string
	GeminiModel   string
	DefaultCropID string
	HistoryLimit  int
}

// Load reads configuration from environment variables (optionally .env).
// DATABASE_URL and GEMINI_API_KEY are optional: without them the snapshot
// log and the AI endpoints are disabled rather than fatal.
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:          8080,
		GeminiModel:   "gemini-1.5-flash",
		DefaultCropID: "tomato",
		HistoryLimit:  50,
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.GeminiModel = model
	}

	if crop := os.Getenv("DEFAULT_CROP_ID"); crop != "" {
		cfg.DefaultCropID = crop
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	} else if portStr := os.Getenv("API_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid API_PORT: %s", portStr)
		}
	}

	if limitStr := os.Getenv("API_HISTORY_LIMIT"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			cfg.HistoryLimit = limit
		} else {
			return cfg, fmt.Errorf("invalid API_HISTORY_LIMIT: %s", limitStr)
		}
	}

	cfg.BearerToken = os.Getenv("API_BEARER_TOKEN")

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
