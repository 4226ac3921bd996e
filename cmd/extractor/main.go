// Command extractor runs one extraction against the Kalshi markets API:
// fetch, categorize, rank by volume, report to stdout, export to JSON.
//
// Usage:
//
//	extractor [flags] [demo]
//
// The bare "demo" argument (or -demo) swaps the live API for the
// built-in fixture data set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rickgao/kalshi-extract/internal/api"
	"github.com/rickgao/kalshi-extract/internal/config"
	"github.com/rickgao/kalshi-extract/internal/export"
	"github.com/rickgao/kalshi-extract/internal/extract"
	"github.com/rickgao/kalshi-extract/internal/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	demo := flag.Bool("demo", false, "use built-in fixture data instead of the live API")
	topN := flag.Int("top", 0, "markets per category (overrides config)")
	maxPages := flag.Int("pages", -1, "page cap for pagination, 0 = unbounded (overrides config)")
	detailed := flag.Bool("detailed", false, "enrich ranked markets with orderbook and series data")
	outPath := flag.String("out", "", "export file path (default: timestamped file in export dir)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	logger.Info("starting extractor",
		"version", version.Version,
		"commit", version.Commit,
	)

	// Local .env is optional; it feeds ${KALSHI_API_KEY} style expansion.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return 1
	}

	// Flags override file values.
	if *topN > 0 {
		cfg.Extract.TopN = *topN
	}
	if *maxPages >= 0 {
		cfg.Extract.MaxPages = *maxPages
	}
	if *detailed {
		cfg.Extract.Detailed = true
	}
	useDemo := *demo || flag.Arg(0) == "demo"

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return 1
	}

	// Handle shutdown signals.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	extractCfg := extract.Config{
		TopN:      cfg.Extract.TopN,
		PageLimit: cfg.Extract.PageLimit,
		MaxPages:  cfg.Extract.MaxPages,
		Status:    cfg.Extract.Status,
		Detailed:  cfg.Extract.Detailed,
	}

	var extractor *extract.Extractor
	if useDemo {
		logger.Info("demo mode: using fixture data")
		fixture := api.NewFixtureSource()
		extractor = extract.New(extractCfg, fixture, logger, extract.WithDetailSource(fixture))
	} else {
		apiKey := cfg.API.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("KALSHI_API_KEY")
		}
		client := api.NewClient(
			cfg.API.RestURL,
			apiKey,
			api.WithLogger(logger),
			api.WithTimeout(cfg.API.Timeout.Duration()),
		)

		status, err := client.GetExchangeStatus(ctx)
		if err != nil {
			logger.Error("failed to get exchange status", "error", err)
			return 1
		}
		logger.Info("exchange status",
			"exchange_active", status.ExchangeActive,
			"trading_active", status.TradingActive,
		)

		extractor = extract.New(extractCfg, client, logger, extract.WithDetailSource(client))
	}

	summary, err := extractor.Run(ctx)
	if err != nil {
		logger.Error("extraction failed", "error", err)
		return 1
	}

	if err := export.WriteReport(os.Stdout, summary); err != nil {
		logger.Error("failed to print report", "error", err)
		return 1
	}

	dest := *outPath
	if dest == "" {
		dest = filepath.Join(cfg.Export.Dir, export.DefaultFilename(summary.GeneratedAt))
	}
	written, err := export.WriteSummary(summary, dest)
	if err != nil {
		logger.Error("failed to write export file", "error", err)
		return 1
	}

	fmt.Printf("\nData exported to: %s\n", written)
	return 0
}

func loadConfig(path string) (*config.ExtractorConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadAndValidate(path)
}
