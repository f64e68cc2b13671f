// Package main provides the MCP server entry point for linkedin-mcp.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bharathsd/linkedin-mcp/internal/config"
	"github.com/bharathsd/linkedin-mcp/internal/linkedin"
	"github.com/bharathsd/linkedin-mcp/internal/mcp"
	"github.com/bharathsd/linkedin-mcp/internal/redact"
	"github.com/bharathsd/linkedin-mcp/internal/watcher"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	listen := flag.String("listen", "", "Serve MCP over SSE on this address instead of stdio (e.g. :8931)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	credential := config.Credential()

	// MCP uses stdout for the protocol, so log to stderr - and route every
	// log byte through the redactor so the cookie can never appear there.
	redactor := redact.New(credential)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: redactor.Writer(os.Stderr), NoColor: true})

	if err := config.EnsureDataDir(); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure data directory")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load settings, using defaults")
		cfg = config.Default()
	}

	if credential == "" {
		log.Warn().Str("env", config.CredentialEnv).Msg("No session credential set; every tool call will report not_configured")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("Shutting down MCP server")
		cancel()
	}()

	startSettingsWatcher()

	client := linkedin.New(cfg, linkedin.NewCredential(credential), config.CSRFToken())
	server := mcp.NewServer(client, redactor, Version)

	log.Info().
		Str("version", Version).
		Bool("configured", client.Configured()).
		Str("baseUrl", cfg.BaseURL).
		Msg("Starting LinkedIn MCP server")

	if *listen != "" {
		err = server.RunSSE(ctx, *listen)
	} else {
		err = server.Run(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("MCP server error")
	}
}

// startSettingsWatcher exits the process when settings.yaml changes; the
// supervising MCP host restarts it with the fresh configuration.
func startSettingsWatcher() {
	settingsPath := config.SettingsPath()
	settingsWatcher, err := watcher.New(settingsPath, func() {
		log.Warn().Str("path", settingsPath).Msg("Settings changed, exiting for restart...")
		time.Sleep(100 * time.Millisecond) // Give logs time to flush
		os.Exit(0)
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to create settings watcher")
		return
	}
	if err := settingsWatcher.Start(); err != nil {
		log.Warn().Err(err).Msg("Failed to start settings watcher")
		return
	}
	log.Info().Str("path", settingsPath).Msg("Settings file watcher started")
}
