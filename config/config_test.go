package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/blogem/geoattend/models"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_PATH", "MAX_IMAGE_BYTES", "LOCATION_FRESHNESS",
		"ATTENDANCE_OPEN", "ATTENDANCE_CLOSE", "TIMEZONE", "NOTIFY_URL", "NOTIFY_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "geoattend.db", cfg.DatabasePath)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxImageBytes)
	assert.Equal(t, 5*time.Minute, cfg.LocationFreshness)
	assert.Equal(t, "08:00", cfg.Window.Open)
	assert.Equal(t, "18:00", cfg.Window.Close)
	assert.Equal(t, 10*time.Second, cfg.NotifyTimeout)
	assert.Empty(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_IMAGE_BYTES", "1048576")
	t.Setenv("LOCATION_FRESHNESS", "2m")
	t.Setenv("ATTENDANCE_OPEN", "07:30")
	t.Setenv("ATTENDANCE_CLOSE", "16:45")
	t.Setenv("TIMEZONE", "UTC")

	cfg := FromEnv()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, int64(1048576), cfg.MaxImageBytes)
	assert.Equal(t, 2*time.Minute, cfg.LocationFreshness)
	assert.Equal(t, "07:30", cfg.Window.Open)
	assert.Equal(t, "16:45", cfg.Window.Close)

	loc, err := cfg.Location()
	assert.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestFromEnvReportsMalformedValues(t *testing.T) {
	t.Setenv("MAX_IMAGE_BYTES", "lots")
	t.Setenv("LOCATION_FRESHNESS", "5 minutes")
	t.Setenv("NOTIFY_TIMEOUT", "")
	t.Setenv("ATTENDANCE_OPEN", "")
	t.Setenv("ATTENDANCE_CLOSE", "")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("NOTIFY_URL", "")

	cfg := FromEnv()

	assert.Equal(t, int64(defaultMaxImageBytes), cfg.MaxImageBytes)
	assert.Equal(t, 5*time.Minute, cfg.LocationFreshness)
	assert.ElementsMatch(t, []string{
		`MAX_IMAGE_BYTES: invalid integer "lots"`,
		`LOCATION_FRESHNESS: invalid duration "5 minutes"`,
	}, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := Config{
		MaxImageBytes:     0,
		LocationFreshness: -time.Minute,
		Window:            models.TimeWindow{Open: "18:00", Close: "08:00"},
		Timezone:          "Mars/Olympus_Mons",
		NotifyURL:         "https://sms.example.com/send",
	}

	errors := cfg.Validate()
	assert.Len(t, errors, 5)
	assert.Contains(t, errors, "Location freshness window must be positive")
	assert.Contains(t, errors, "Maximum image size must be positive")
	assert.Contains(t, errors, "NOTIFY_RECIPIENT is required when NOTIFY_URL is set")
}
