package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := FromEnv(lookupFrom(map[string]string{
			"DB_NAME": "mahjong.db",
			"PORT":    "8080",
		}))
		require.NoError(t, err)
		assert.Equal(t, "mahjong.db", cfg.DBName)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 9*time.Hour, cfg.DisplayOffset)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.False(t, cfg.Slack.Enabled())
		assert.Empty(t, cfg.Turso.PrimaryURL)
	})

	t.Run("all set", func(t *testing.T) {
		cfg, err := FromEnv(lookupFrom(map[string]string{
			"DB_NAME":                  "mahjong.db",
			"PORT":                     "8080",
			"SLACK_BOT_TOKEN":          "xoxb-test",
			"SLACK_CHANNEL_ID":         "C123",
			"SLACK_SIGNING_SECRET":     "secret",
			"TURSO_PRIMARY_URL":        "libsql://example.turso.io",
			"TURSO_AUTH_TOKEN":         "token",
			"GCP_PROJECT":              "proj",
			"DISPLAY_UTC_OFFSET_HOURS": "5.5",
			"LOG_LEVEL":                "debug",
		}))
		require.NoError(t, err)
		assert.True(t, cfg.Slack.Enabled())
		assert.Equal(t, "C123", cfg.Slack.ChannelID)
		assert.Equal(t, "libsql://example.turso.io", cfg.Turso.PrimaryURL)
		assert.Equal(t, "proj", cfg.ProjectID)
		assert.Equal(t, 5*time.Hour+30*time.Minute, cfg.DisplayOffset)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("missing required", func(t *testing.T) {
		_, err := FromEnv(lookupFrom(map[string]string{"PORT": "8080"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_NAME")
	})

	t.Run("bad offset", func(t *testing.T) {
		_, err := FromEnv(lookupFrom(map[string]string{
			"DB_NAME":                  "x.db",
			"PORT":                     "1",
			"DISPLAY_UTC_OFFSET_HOURS": "nine",
		}))
		assert.Error(t, err)
	})
}
