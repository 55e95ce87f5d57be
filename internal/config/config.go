// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the tunables for the render service. Nothing is required;
// every field has a working default.
type Config struct {
	// MaxImageDimension caps the longer edge of accepted images; larger
	// inputs are downscaled before processing. <= 0 disables the cap.
	MaxImageDimension int

	// RenderWorkers sets the row-band pool size for pipeline stages.
	// <= 0 selects GOMAXPROCS.
	RenderWorkers int

	// OutputDir is where rendered PNGs are persisted.
	OutputDir string

	LogLevel string

	// GenerativeTimeout bounds a single external generative-image call.
	GenerativeTimeout time.Duration
}

// Load reads configuration from the environment, honoring a .env file in the
// working directory when present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		MaxImageDimension: getEnvInt("MAX_IMAGE_DIMENSION", 4096),
		RenderWorkers:     getEnvInt("RENDER_WORKERS", 0),
		OutputDir:         getEnv("OUTPUT_DIR", "uploads"),
		LogLevel:          strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", "info"))),
		GenerativeTimeout: time.Duration(getEnvInt("GENERATIVE_TIMEOUT_SECONDS", 60)) * time.Second,
	}

	if cfg.GenerativeTimeout <= 0 {
		cfg.GenerativeTimeout = 60 * time.Second
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "uploads"
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
