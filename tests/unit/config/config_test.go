package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remitscan/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	// Shield from ambient platform variables.
	t.Setenv("PORT", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.Anthropic.Model)
	assert.Equal(t, 4096, cfg.Anthropic.MaxTokens)
	assert.Equal(t, "server", cfg.Relay.Profile)
	assert.Equal(t, time.Duration(0), cfg.Relay.Deadline)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("REMITSCAN_SERVER_PORT", ":8081")
	t.Setenv("REMITSCAN_RELAY_PROFILE", "edge")
	t.Setenv("REMITSCAN_RELAY_DEADLINE", "7s")
	t.Setenv("REMITSCAN_ANTHROPIC_MODEL", "claude-haiku-4-20250514")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Server.Port)
	assert.Equal(t, "edge", cfg.Relay.Profile)
	assert.Equal(t, 7*time.Second, cfg.Relay.Deadline)
	assert.Equal(t, "claude-haiku-4-20250514", cfg.Anthropic.Model)
}

func TestLoad_APIKeyFallsBackToConventionalName(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-conventional")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-conventional", cfg.Anthropic.APIKey)
	assert.True(t, cfg.Anthropic.Configured())
}

func TestLoad_PrefixedAPIKeyWins(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-conventional")
	t.Setenv("REMITSCAN_ANTHROPIC_API_KEY", "sk-prefixed")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-prefixed", cfg.Anthropic.APIKey)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_CORSOriginsParsed(t *testing.T) {
	t.Setenv("REMITSCAN_CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestConfigured_FalseWithoutKey(t *testing.T) {
	cfg := config.AnthropicConfig{}
	assert.False(t, cfg.Configured())
}
