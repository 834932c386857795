package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It is loaded once at process
// start and is read-only afterwards.
type Config struct {
	Server    ServerConfig
	Anthropic AnthropicConfig
	Relay     RelayConfig
	CORS      CORSConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// AnthropicConfig holds upstream Messages API settings. APIKey has no
// default; a missing key is reported per-request as a configuration error.
type AnthropicConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"max_tokens"`
	Endpoint  string `mapstructure:"endpoint"`
}

// Configured reports whether an API key is present, without exposing it.
func (a *AnthropicConfig) Configured() bool {
	return a.APIKey != ""
}

// RelayConfig selects the platform profile and optional overrides.
// Deadline and MaxUploadMB override the profile values when non-zero.
type RelayConfig struct {
	Profile     string        `mapstructure:"profile"`
	Deadline    time.Duration `mapstructure:"deadline"`
	MaxUploadMB int64         `mapstructure:"max_upload_mb"`
}

// CORSConfig holds CORS settings. An empty origin list allows any origin.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Load reads configuration from environment variables with the REMITSCAN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("REMITSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":3000")
	v.SetDefault("server.read_timeout", "60s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// Anthropic defaults
	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.model", "claude-sonnet-4-20250514")
	v.SetDefault("anthropic.max_tokens", 4096)
	v.SetDefault("anthropic.endpoint", "")

	// Relay defaults
	v.SetDefault("relay.profile", "server")
	v.SetDefault("relay.deadline", "0s")
	v.SetDefault("relay.max_upload_mb", 0)

	// CORS defaults (empty: allow any origin)
	v.SetDefault("cors.allowed_origins", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 3)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "REMITSCAN_SERVER_PORT",
		"server.read_timeout":  "REMITSCAN_SERVER_READ_TIMEOUT",
		"server.write_timeout": "REMITSCAN_SERVER_WRITE_TIMEOUT",
		"server.environment":   "REMITSCAN_SERVER_ENVIRONMENT",
		"anthropic.api_key":    "REMITSCAN_ANTHROPIC_API_KEY",
		"anthropic.model":      "REMITSCAN_ANTHROPIC_MODEL",
		"anthropic.max_tokens": "REMITSCAN_ANTHROPIC_MAX_TOKENS",
		"anthropic.endpoint":   "REMITSCAN_ANTHROPIC_ENDPOINT",
		"relay.profile":        "REMITSCAN_RELAY_PROFILE",
		"relay.deadline":       "REMITSCAN_RELAY_DEADLINE",
		"relay.max_upload_mb":  "REMITSCAN_RELAY_MAX_UPLOAD_MB",
		"cors.allowed_origins": "REMITSCAN_CORS_ALLOWED_ORIGINS",
		"log.level":            "REMITSCAN_LOG_LEVEL",
		"log.format":           "REMITSCAN_LOG_FORMAT",
		"log.file":             "REMITSCAN_LOG_FILE",
		"log.max_size_mb":      "REMITSCAN_LOG_MAX_SIZE_MB",
		"log.max_backups":      "REMITSCAN_LOG_MAX_BACKUPS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	// ANTHROPIC_API_KEY is the conventional name; accept it when the
	// prefixed variant is not set.
	apiKey := v.GetString("anthropic.api_key")
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	// Railway/Heroku/Render set a PORT env var. Use it if REMITSCAN_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("REMITSCAN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg := &Config{}
	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Anthropic = AnthropicConfig{
		APIKey:    apiKey,
		Model:     v.GetString("anthropic.model"),
		MaxTokens: v.GetInt("anthropic.max_tokens"),
		Endpoint:  v.GetString("anthropic.endpoint"),
	}
	cfg.Relay = RelayConfig{
		Profile:     v.GetString("relay.profile"),
		Deadline:    v.GetDuration("relay.deadline"),
		MaxUploadMB: v.GetInt64("relay.max_upload_mb"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Log = LogConfig{
		Level:      v.GetString("log.level"),
		Format:     v.GetString("log.format"),
		File:       v.GetString("log.file"),
		MaxSizeMB:  v.GetInt("log.max_size_mb"),
		MaxBackups: v.GetInt("log.max_backups"),
	}

	return cfg, nil
}
