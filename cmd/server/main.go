package main

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"remitscan/internal/config"
	"remitscan/internal/handler"
	"remitscan/internal/logger"
	"remitscan/internal/relay"
	"remitscan/internal/router"
	"remitscan/internal/upstream"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	// Best effort; production deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Log); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	profile := relay.ProfileFor(&cfg.Relay)
	client := upstream.NewClient(&cfg.Anthropic)

	extractH := handler.NewExtractHandler(client, profile, cfg.Anthropic.Configured())
	healthH := handler.NewHealthHandler(time.Now(), cfg.Anthropic.Configured())

	r := router.Setup(cfg, extractH, healthH)

	log.Info().
		Str("port", cfg.Server.Port).
		Str("profile", profile.Name).
		Dur("deadline", profile.Deadline).
		Int64("max_upload_bytes", profile.MaxUploadBytes).
		Str("model", cfg.Anthropic.Model).
		Bool("api_key_configured", cfg.Anthropic.Configured()).
		Msg("server starting")

	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
