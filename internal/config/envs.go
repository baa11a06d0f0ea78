package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	Addr          string        // Listen address for the HTTP adapter
	RedisAddr     string        // Redis address for the report cache; empty disables caching
	RedisPassword string        // Password for Redis
	RedisDB       int           // Redis database number
	CacheTTL      time.Duration // Expiry for cached reports; 0 keeps them until evicted
	LogLevel      string        // debug, info, warn or error
	MaxCells      int           // Largest grid (height×width) the server accepts
}

// Defaults used when a variable is not set.
const (
	DefaultAddr     = ":8080"
	DefaultCacheTTL = 10 * time.Minute
	DefaultLogLevel = "info"
	DefaultMaxCells = 250_000
)

// Load reads an optional .env file from the working directory and then
// builds a Config from PATHGRID_* environment variables.
func Load() (Config, error) {
	// Load .env file if available; a missing file is not an error
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	var err error
	cfg := Config{
		Addr:          getEnvWithDefault("PATHGRID_ADDR", DefaultAddr),
		RedisAddr:     getEnvWithDefault("PATHGRID_REDIS_ADDR", ""),
		RedisPassword: getEnvWithDefault("PATHGRID_REDIS_PASSWORD", ""),
		LogLevel:      getEnvWithDefault("PATHGRID_LOG_LEVEL", DefaultLogLevel),
	}
	if cfg.RedisDB, err = getEnvAsInt("PATHGRID_REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.MaxCells, err = getEnvAsInt("PATHGRID_MAX_CELLS", DefaultMaxCells); err != nil {
		return Config{}, err
	}
	if cfg.MaxCells <= 0 {
		return Config{}, fmt.Errorf("config: PATHGRID_MAX_CELLS must be positive, got %d", cfg.MaxCells)
	}
	if cfg.CacheTTL, err = getEnvAsDuration("PATHGRID_CACHE_TTL", DefaultCacheTTL); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns a default value if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvAsDuration retrieves a duration environment variable (e.g. "90s") or returns a default value if not set.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a duration: %w", key, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("config: %s cannot be negative", key)
	}
	return value, nil
}
