package main

import (
	"context"
	"log"
	"time"

	"github.com/abelbrown/brief/internal/config"
	"github.com/abelbrown/brief/internal/signal"
	"github.com/abelbrown/brief/internal/source"
	"github.com/abelbrown/brief/internal/store"
	"github.com/abelbrown/brief/internal/vocab"
)

// loadConfig reads the config or fatals. Vocabulary overrides take effect
// here so every downstream heuristic sees them.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if v := cfg.Vocabulary.Churn; len(v) > 0 {
		vocab.Churn = v
	}
	if v := cfg.Vocabulary.Support; len(v) > 0 {
		vocab.Support = v
	}
	if v := cfg.Vocabulary.Opportunity; len(v) > 0 {
		vocab.Opportunity = v
	}
	return cfg
}

// openDB opens the history store or fatals.
func openDB(cfg *config.Config) *store.Store {
	st, err := store.Open(cfg.DBPath())
	if err != nil {
		log.Fatalf("failed to open history database: %v", err)
	}
	return st
}

// loadDataset resolves the dataset path (flag beats config), loads it, and
// folds in any enabled message feeds from the config.
func loadDataset(path string, cfg *config.Config) *signal.UnifiedDataset {
	if path == "" {
		path = cfg.Sources.DatasetFile
	}
	if path == "" {
		log.Fatal("no dataset: pass -data or set sources.dataset_file in config")
	}
	d, err := source.LoadDataset(path)
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}

	var feeds []source.MessageSource
	for _, f := range cfg.Sources.MessageFeeds {
		if f.Enabled {
			feeds = append(feeds, source.NewRSS(f.Name, f.URL))
		}
	}
	if len(feeds) == 0 {
		return d
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	return source.Collect(ctx, d, feeds, time.Now())
}

// parseNow parses the -now flag, defaulting to the wall clock. A fixed
// timestamp makes output reproducible.
func parseNow(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		log.Fatalf("invalid -now value %q: %v", s, err)
	}
	return t
}
