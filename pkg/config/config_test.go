package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("REMINDER_INTERVAL", "")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, time.Duration(0), cfg.ReminderInterval)
	assert.Equal(t, 30, cfg.UpcomingWindowDays)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("REMINDER_INTERVAL", "1h")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, time.Hour, cfg.ReminderInterval)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.AuthEnabled())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REMINDER_INTERVAL", "soon")
	t.Setenv("UPCOMING_WINDOW_DAYS", "many")

	cfg := Load()

	assert.Equal(t, time.Duration(0), cfg.ReminderInterval)
	assert.Equal(t, 30, cfg.UpcomingWindowDays)
}
