// Command seoul-metro-monitor runs one check of the Seoul Metro notice board
// and forwards keyword-matching posts to a webhook.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"

	"github.com/JTechhub/seoul-metro-monitor/config"
	"github.com/JTechhub/seoul-metro-monitor/filter"
	"github.com/JTechhub/seoul-metro-monitor/monitor"
	"github.com/JTechhub/seoul-metro-monitor/scraper"
	"github.com/JTechhub/seoul-metro-monitor/webhook"
)

func main() {
	ctx := context.Background()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// One id per scheduled run so log lines from different runs can be told
	// apart in aggregated output.
	logger = logger.With("run_id", uuid.NewString())

	webhookURL := os.Getenv("WEBHOOK_URL")
	if webhookURL == "" {
		logger.Error("WEBHOOK_URL environment variable required")
		os.Exit(1)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Error("Failed to load config file", "error", err)
		os.Exit(1)
	}

	parser, err := scraper.NewParser(cfg.BoardURL, cfg.RowSelectors, logger)
	if err != nil {
		logger.Error("Invalid board URL", "error", err, "board_url", cfg.BoardURL)
		os.Exit(1)
	}

	client := &http.Client{Timeout: cfg.Timeout()}
	m := monitor.New(
		scraper.New(client, cfg.BoardURL, cfg.UserAgent, logger),
		parser,
		filter.NewKeywords(cfg.Keywords),
		webhook.New(webhookURL, client, logger),
		logger,
	)

	logger.Info("Seoul Metro board monitor starting",
		"board_url", cfg.BoardURL,
		"keywords", len(cfg.Keywords))

	if _, err := m.Run(ctx); err != nil {
		// A failed fetch is logged but does not fail the scheduled run.
		logger.Error("Board check did not complete", "error", err)
	}
}
