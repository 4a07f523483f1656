package main

import (
	"flag"
	"net/http"
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/YungSonix/Smite2Mastery-sub002/internal/api"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/catalog"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/config"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/dataset"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/icons"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/storage"
)

func main() {
	// Parse flags; flags beat config file beats defaults
	configPath := flag.String("config", getEnv("CONFIG_PATH", "./config.toml"), "Config file path")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	dbPath := flag.String("db", "", "SQLite database path (overrides config)")
	dataPath := flag.String("data", "", "Dataset JSON path (overrides config)")
	flag.Parse()

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "mastery",
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *dbPath != "" {
		cfg.Storage.DBPath = *dbPath
	}
	if *dataPath != "" {
		cfg.Data.DatasetPath = *dataPath
	}

	// Load the bundled dataset; it is read-only for the process lifetime
	ds, err := dataset.Load(cfg.Data.DatasetPath)
	if err != nil {
		logger.Fatal("failed to load dataset", "err", err)
	}
	cat := catalog.New(ds.Gods, ds.Items)
	cat.PageSize = cfg.Data.PageSize
	logger.Info("dataset loaded",
		"gods", len(cat.Gods()), "items", len(cat.Items()), "pantheons", len(cat.Pantheons()))

	// Loadout storage
	store, err := storage.New(cfg.Storage.DBPath)
	if err != nil {
		logger.Fatal("failed to initialize storage", "err", err)
	}
	defer store.Close()

	var registry icons.Registry
	if cfg.Data.IconDir != "" {
		registry = icons.Dir{Root: cfg.Data.IconDir}
	}

	server := api.New(cat, store, api.Options{
		Icons:       registry,
		CORSOrigins: cfg.Server.CORSOrigins,
		Logger:      logger,
	})

	logger.Info("starting API server", "addr", cfg.Server.Addr, "db", cfg.Storage.DBPath)
	if err := http.ListenAndServe(cfg.Server.Addr, server); err != nil {
		logger.Fatal("server failed", "err", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
