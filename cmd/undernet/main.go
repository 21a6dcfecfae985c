// Command undernet serves the hacker-life simulation over a JSON HTTP API.
package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/talgya/undernet/internal/api"
	"github.com/talgya/undernet/internal/content"
	"github.com/talgya/undernet/internal/persistence"
)

func main() {
	var (
		port        = flag.Int("port", 8390, "HTTP API port")
		dbPath      = flag.String("db", "data/undernet.db", "save-slot database path")
		contentPath = flag.String("content", "", "optional YAML content override file")
		marketSeed  = flag.Int64("market-seed", 0, "generate a procedural market cycle from this seed (0 = built-in cycle)")
		marketLen   = flag.Int("market-len", 6, "length of the generated market cycle")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	library := content.Default()
	if *contentPath != "" {
		loaded, err := content.LoadFile(*contentPath)
		if err != nil {
			slog.Error("failed to load content", "path", *contentPath, "error", err)
			os.Exit(1)
		}
		library = loaded
		slog.Info("content loaded", "path", *contentPath)
	}
	if *marketSeed != 0 {
		library.MarketTrends = content.GenerateMarketCycle(*marketSeed, *marketLen)
		slog.Info("procedural market cycle", "seed", *marketSeed, "len", len(library.MarketTrends))
	}
	slog.Info("catalogs ready",
		"backgrounds", len(library.Backgrounds),
		"training", len(library.Training),
		"contracts", len(library.Contracts),
		"gear", len(library.Gear),
		"market_trends", len(library.MarketTrends),
		"crisis_events", len(library.CrisisEvents),
	)

	if dir := filepath.Dir(*dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			slog.Error("failed to create save directory", "dir", dir, "error", err)
			os.Exit(1)
		}
	}
	store, err := persistence.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open save database", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("save database opened", "path", *dbPath)

	server := &api.Server{
		Library: library,
		Store:   store,
		Port:    *port,
	}
	server.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)
}
