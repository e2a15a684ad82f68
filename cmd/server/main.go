// Package main is the entry point for the Alternate-Credit Trust Score
// service. It scores underbanked loan applicants from alternative data
// signals (telecom, utilities, digital behavior, social indicators,
// behavioral biometrics) and evaluates loan requests against an
// affordability policy.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yashbhanu1/Alternate-Credit/internal/clients/gemini"
	"github.com/yashbhanu1/Alternate-Credit/internal/config"
	"github.com/yashbhanu1/Alternate-Credit/internal/profiles"
	"github.com/yashbhanu1/Alternate-Credit/internal/server"
	"github.com/yashbhanu1/Alternate-Credit/pkg/logger"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	log.Info().Msg("Starting Alternate-Credit Trust Score service")

	// The AI collaborator is an explicit dependency, injected into the
	// server. Missing credentials are fine: analysis falls back to a
	// static payload and chat reports itself unavailable.
	geminiClient := gemini.New(gemini.Config{
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		APIKey:  cfg.GeminiAPIKey,
		Log:     log,
	})
	if !geminiClient.Configured() {
		log.Warn().Msg("GEMINI_API_KEY not set - AI analysis will use fallback responses")
	}

	registry := profiles.NewRegistry(log)

	srv := server.New(server.Config{
		Port:     cfg.Port,
		Log:      log,
		Registry: registry,
		Gemini:   geminiClient,
		DevMode:  cfg.DevMode,
		Version:  getEnv("VERSION", "dev"),
	})

	// Start server in goroutine so the main thread can wait on signals
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Give in-flight requests up to 10 seconds to finish
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
