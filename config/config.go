// Package config loads campusmap runtime settings from the environment.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP    HTTPConfig
	Walking WalkingConfig
	Logging LoggingConfig
}

// HTTPConfig governs the HTTP surface.
type HTTPConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string // empty means any origin
	GinMode         string
}

// WalkingConfig holds defaults for route estimates.
type WalkingConfig struct {
	Speed  float64 // meters per minute
	Seeded bool    // start from the example campus edges
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // text|json
}

const (
	defaultHost            = "0.0.0.0"
	defaultPort            = 8080
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultWalkingSpeed    = 80.0
	defaultLoggingLevel    = "info"
	defaultLoggingFormat   = "text"
	defaultGinMode         = "release"
)

// Load reads an optional .env file, then environment variables, applying defaults.
// A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		HTTP: HTTPConfig{
			Host:            valueOrDefault("CAMPUSMAP_HOST", defaultHost),
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			AllowedOrigins:  parseCSV(os.Getenv("CAMPUSMAP_ALLOWED_ORIGINS")),
			GinMode:         valueOrDefault("GIN_MODE", defaultGinMode),
		},
		Logging: LoggingConfig{
			Level:  valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format: valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
		},
	}

	port, err := parsePort("CAMPUSMAP_PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.Port = port

	speed, err := parseSpeed("CAMPUSMAP_WALKING_SPEED", defaultWalkingSpeed)
	if err != nil {
		return Config{}, err
	}
	cfg.Walking.Speed = speed

	seeded, err := parseBoolWithDefault("CAMPUSMAP_SEED", true)
	if err != nil {
		return Config{}, err
	}
	cfg.Walking.Seeded = seeded

	if v := os.Getenv("CAMPUSMAP_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CAMPUSMAP_SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.HTTP.ShutdownTimeout = d
	}

	return cfg, nil
}

// Addr returns host:port for net/http.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) (bool, error) {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		return val, nil
	}
	return fallback, nil
}

func parsePort(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if port <= 0 || port > 65535 {
			return 0, fmt.Errorf("port %d is out of range", port)
		}
		return port, nil
	}
	return fallback, nil
}

func parseSpeed(key string, fallback float64) (float64, error) {
	if v := os.Getenv(key); v != "" {
		speed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if speed <= 0 || math.IsInf(speed, 0) || math.IsNaN(speed) {
			return 0, fmt.Errorf("%s must be a positive number, got %v", key, speed)
		}
		return speed, nil
	}
	return fallback, nil
}

func parseCSV(csv string) []string {
	if csv == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
