package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "DATABASE_URL", "PORT", "REDIS_URL", "PRESENCE_CACHE_TTL_SECONDS", "HTTP_TIMEOUT_SECONDS", "COMMAND_PREFIX", "STEAM_API_URL", "GROUPME_API_URL"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, devDatabaseURL, cfg.DatabaseURL)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 30*time.Second, cfg.PresenceCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "!status", cfg.CommandPrefix)
	assert.Equal(t, "https://api.steampowered.com", cfg.SteamAPIURL)
	assert.Equal(t, "https://api.groupme.com/v3", cfg.GroupMeAPIURL)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("PRESENCE_CACHE_TTL_SECONDS", "45")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("STEAM_WEB_API_KEY", "steam-key")
	t.Setenv("GROUPME_BOT_ID", "bot-1")

	cfg := LoadConfig()
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 45*time.Second, cfg.PresenceCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "steam-key", cfg.SteamAPIKey)
	assert.Equal(t, "bot-1", cfg.GroupMeBotID)
}

func TestValidate(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://x", CommandPrefix: "!status"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "STEAM_WEB_API_KEY")
	assert.ErrorContains(t, err, "GROUPME_BOT_ID")

	cfg.SteamAPIKey = "k"
	cfg.GroupMeBotID = "b"
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigProductionRequiresDatabaseURL(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("STEAM_WEB_API_KEY", "steam-key")
	t.Setenv("GROUPME_BOT_ID", "bot-1")
	t.Setenv("COMMAND_PREFIX", "")

	cfg := LoadConfig()
	assert.Empty(t, cfg.DatabaseURL)
	assert.ErrorContains(t, cfg.Validate(), "DATABASE_URL is required")

	t.Setenv("DATABASE_URL", "postgres://db/statusbot")
	assert.NoError(t, LoadConfig().Validate())
}
