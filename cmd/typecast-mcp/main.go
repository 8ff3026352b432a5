package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/neosapience/typecast-mcp/pkg/audiofile"
	"github.com/neosapience/typecast-mcp/pkg/config"
	"github.com/neosapience/typecast-mcp/pkg/logging"
	"github.com/neosapience/typecast-mcp/pkg/player"
	"github.com/neosapience/typecast-mcp/pkg/providers/typecast"
	"github.com/neosapience/typecast-mcp/pkg/redact"
	"github.com/neosapience/typecast-mcp/pkg/runner"
	"github.com/neosapience/typecast-mcp/pkg/server"
)

func main() {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("TYPECAST_CONFIG"))
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.InitLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	slog.SetDefault(logger)
	redact.SetEnabled(cfg.Privacy.RedactPII)

	client, err := typecast.New(typecast.Config{
		APIHost: cfg.APIHost,
		APIKey:  cfg.APIKey,
	}, logging.NewComponentLogger(logger, "typecast"))
	if err != nil {
		logger.Error("init client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store := audiofile.NewStore(cfg.OutputDir, logging.NewComponentLogger(logger, "audiofile"))

	players, err := player.FromConfig(cfg.Player.Provider, cfg.Player.Settings, logging.NewComponentLogger(logger, "player"))
	if err != nil {
		logger.Error("init player", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := server.New(client, store, players, logging.NewComponentLogger(logger, "server"))

	runner.PrintBanner()
	logger.Info("starting typecast-mcp",
		slog.String("host", cfg.APIHost),
		slog.String("output_dir", cfg.OutputDir),
		slog.String("version", runner.Version))

	if err := runner.Run(context.Background(), server.NewMCPServer(srv, runner.Version)); err != nil {
		logger.Error("serve", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
