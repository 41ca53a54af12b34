package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/blogem/geoattend/models"
)

// Config captures runtime configuration values for the attendance server.
type Config struct {
	Port              string
	DatabasePath      string
	AdminSecretHash   string
	MaxImageBytes     int64
	LocationFreshness time.Duration
	Window            models.TimeWindow
	Timezone          string
	LogLevel          string
	LogFormat         string
	NotifyURL         string
	NotifyToken       string
	NotifyRecipient   string
	NotifyTimeout     time.Duration

	// parseErrors holds variables that were set but could not be parsed
	parseErrors []string
}

const defaultMaxImageBytes = 5 * 1024 * 1024

// Load reads an optional .env file, then the environment, and applies defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}
	return FromEnv(), nil
}

// FromEnv reads environment variables and applies defaults. Values that fail
// to parse fall back to their default and are reported by Validate.
func FromEnv() Config {
	var parseErrors []string
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		DatabasePath:      getEnv("DATABASE_PATH", "geoattend.db"),
		AdminSecretHash:   getEnv("ADMIN_SECRET_HASH", ""),
		MaxImageBytes:     getInt64Env("MAX_IMAGE_BYTES", defaultMaxImageBytes, &parseErrors),
		LocationFreshness: getDurationEnv("LOCATION_FRESHNESS", 5*time.Minute, &parseErrors),
		Window: models.TimeWindow{
			Open:  getEnv("ATTENDANCE_OPEN", models.DefaultTimeWindow.Open),
			Close: getEnv("ATTENDANCE_CLOSE", models.DefaultTimeWindow.Close),
		},
		Timezone:        getEnv("TIMEZONE", "Local"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		NotifyURL:       getEnv("NOTIFY_URL", ""),
		NotifyToken:     getEnv("NOTIFY_TOKEN", ""),
		NotifyRecipient: getEnv("NOTIFY_RECIPIENT", ""),
		NotifyTimeout:   getDurationEnv("NOTIFY_TIMEOUT", 10*time.Second, &parseErrors),
	}
	cfg.parseErrors = parseErrors
	return cfg
}

// Validate returns every configuration problem found
func (c Config) Validate() []string {
	errors := append([]string(nil), c.parseErrors...)

	for _, msg := range c.Window.Validate() {
		errors = append(errors, "Attendance window: "+msg)
	}

	if c.LocationFreshness <= 0 {
		errors = append(errors, "Location freshness window must be positive")
	}

	if c.MaxImageBytes <= 0 {
		errors = append(errors, "Maximum image size must be positive")
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errors = append(errors, fmt.Sprintf("Unknown timezone %q", c.Timezone))
	}

	if c.NotifyURL != "" && c.NotifyRecipient == "" {
		errors = append(errors, "NOTIFY_RECIPIENT is required when NOTIFY_URL is set")
	}

	return errors
}

// Location returns the timezone used to derive attendance dates and times
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration, parseErrors *[]string) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		*parseErrors = append(*parseErrors, fmt.Sprintf("%s: invalid duration %q", key, value))
		return fallback
	}
	return parsed
}

func getInt64Env(key string, fallback int64, parseErrors *[]string) int64 {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		*parseErrors = append(*parseErrors, fmt.Sprintf("%s: invalid integer %q", key, value))
		return fallback
	}
	return parsed
}
