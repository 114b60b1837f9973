package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alejandrodnm/craftbot/config"
	"github.com/alejandrodnm/craftbot/internal/adapters/catalog"
	"github.com/alejandrodnm/craftbot/internal/adapters/hypixel"
	"github.com/alejandrodnm/craftbot/internal/adapters/report"
	"github.com/alejandrodnm/craftbot/internal/analyzer"
	"github.com/alejandrodnm/craftbot/internal/domain"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	item := flag.String("item", "", "resolve a single item by display name and exit")
	top := flag.Int("top", 0, "ranking size (overrides config)")
	once := flag.Bool("once", false, "print the ranking and exit without the interactive prompt")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Sin archivo de config seguimos con los defaults; cualquier otro
		// error de parseo sí es fatal.
		if !errors.Is(err, os.ErrNotExist) {
			slog.Error("failed to load config", "err", err, "path", *configPath)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if *top > 0 {
		cfg.Analyzer.TopN = *top
	}
	setupLogger(cfg.Log)

	slog.Info("craftbot starting",
		"config", *configPath,
		"catalog", cfg.Catalog.Path,
		"top_n", cfg.Analyzer.TopN,
		"once", *once,
	)

	client := hypixel.NewClient(cfg.API.BazaarBase, cfg.API.LowestBinBase)
	snapshot := hypixel.NewSnapshot(client, client, cfg.SnapshotTTL())
	catalogs := catalog.NewFile(cfg.Catalog.Path)
	reporter := report.NewConsole()

	anaCfg := analyzer.DefaultConfig()
	anaCfg.SpreadThreshold = cfg.Analyzer.SpreadThreshold
	anaCfg.MinSellPrice = cfg.Analyzer.MinSellPrice
	anaCfg.TopN = cfg.Analyzer.TopN
	anaCfg.Resolver = domain.ResolverConfig{
		BulkQuantity:  cfg.Analyzer.BulkQuantity,
		BulkUnitPrice: cfg.Analyzer.BulkUnitPrice,
	}

	a := analyzer.New(anaCfg, catalogs, snapshot, snapshot, reporter)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *item != "" {
		explain(ctx, a, *item)
		return
	}

	if err := a.RankTop(ctx); err != nil {
		slog.Error("profit ranking failed", "err", err)
		os.Exit(1)
	}

	if *once {
		return
	}

	runPrompt(ctx, a)
	slog.Info("craftbot stopped cleanly")
}

// runPrompt lee nombres de items de stdin hasta "exit" o EOF.
func runPrompt(ctx context.Context, a *analyzer.Analyzer) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("\nEnter the item name to view its recipe tree and raw craft cost (or type 'exit' to quit): ")
		if !scanner.Scan() {
			return
		}
		if ctx.Err() != nil {
			return
		}

		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		if strings.EqualFold(name, "exit") {
			return
		}

		explain(ctx, a, name)
	}
}

// explain resuelve un item por nombre; un nombre desconocido no es fatal.
func explain(ctx context.Context, a *analyzer.Analyzer, name string) {
	itemID, err := a.Explain(ctx, name)
	if err != nil {
		if errors.Is(err, analyzer.ErrItemNotFound) {
			fmt.Printf("Item '%s' not found in the data.\n", name)
			return
		}
		slog.Error("item resolution failed", "item", name, "err", err)
		os.Exit(1)
	}
	fmt.Printf("\nItem ID for '%s': %s\n", name, itemID)
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
