// Package config loads process configuration from the environment, with an
// optional .env file picked up at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	GeminiAPIKey string
	GeminiModel  string
	Port         string
	LogLevel     string
	LogFile      string
	CacheTTL     time.Duration
	FetchTimeout time.Duration
	MaxPosts     int
}

// Load reads the environment after attempting to load a local .env file.
// Only GEMINI_API_KEY is required; everything else has a default, and
// unparseable values silently keep their defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  envString("GEMINI_MODEL", "gemini-1.5-flash"),
		Port:         envString("PORT", "8080"),
		LogLevel:     envString("LOG_LEVEL", "info"),
		LogFile:      os.Getenv("LOG_FILE"),
		CacheTTL:     envDuration("CACHE_TTL", time.Hour),
		FetchTimeout: envDuration("FETCH_TIMEOUT", 30*time.Second),
		MaxPosts:     envInt("MAX_POSTS", 8),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
