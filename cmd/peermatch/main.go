// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/peermatch"
	"github.com/poiesic/peermatch/backfill"
	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/storage/sqlite"
	"github.com/urfave/cli/v2"
)

// cfg is loaded by the Before hook, with flag overrides applied.
var cfg *Config

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "peermatch",
		Usage: "Student matching and hybrid profile search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Aliases: []string{"d"},
				Usage:   "Path to the data directory (overrides config)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a TOML configuration file",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "backfill",
				Usage:  "Generate embeddings for profiles that do not have them yet",
				Action: backfillCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of profiles to process in each batch (overrides config)",
					},
					&cli.DurationFlag{
						Name:  "delay",
						Usage: "Minimum spacing between embedding provider calls (overrides config)",
					},
					&cli.BoolFlag{
						Name:  "resume",
						Usage: "Continue from the last saved checkpoint",
						Value: true,
					},
					&cli.BoolFlag{
						Name:  "restart",
						Usage: "Discard the saved checkpoint and start from the beginning",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL (overrides config)",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name (overrides config)",
					},
				},
			},
			{
				Name:   "reindex",
				Usage:  "Rebuild the keyword search index from all active profiles",
				Action: reindexCommand,
			},
			{
				Name:   "stats",
				Usage:  "Print profile, index and embedding statistics",
				Action: statsCommand,
			},
		},
	}
}

func setup(c *cli.Context) error {
	loaded, err := LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("data-dir") {
		loaded.Storage.DataDir = c.String("data-dir")
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded

	return setupLogger(c)
}

// openDatabase opens the configured data directory with the provider,
// embedding and search settings the configuration implies.
func openDatabase(opts ...peermatch.DatabaseOption) (*peermatch.Database, error) {
	base, err := cfg.databaseOptions()
	if err != nil {
		return nil, err
	}
	db, err := peermatch.NewDatabase(cfg.Storage.DataDir, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func backfillCommand(c *cli.Context) error {
	ctx := context.Background()

	// Flag overrides on top of the configuration
	if c.IsSet("batch-size") {
		cfg.Backfill.BatchSize = c.Int("batch-size")
	}
	if c.IsSet("embedding-host") {
		cfg.Embedding.Host = c.String("embedding-host")
	}
	if c.IsSet("embedding-model") {
		cfg.Embedding.Model = c.String("embedding-model")
	}

	backfillConfig, err := cfg.backfillConfig()
	if err != nil {
		return err
	}
	if c.IsSet("delay") {
		backfillConfig.ProviderDelay = c.Duration("delay")
	}

	// Validate config
	if backfillConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if backfillConfig.ProviderDelay < 0 {
		return fmt.Errorf("delay cannot be negative")
	}

	// Open database
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	backfiller, err := db.Backfiller(os.Stdout, backfill.WithConfig(backfillConfig))
	if err != nil {
		return fmt.Errorf("failed to create backfiller: %w", err)
	}

	if c.Bool("restart") || !c.Bool("resume") {
		if err := backfiller.Reset(ctx); err != nil {
			return fmt.Errorf("failed to clear checkpoint: %w", err)
		}
	}

	// Run backfill
	fmt.Fprintf(os.Stderr, "Database: %s\n", cfg.Storage.DataDir)
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", cfg.Embedding.Host)
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", cfg.Embedding.Model)
	fmt.Fprintln(os.Stderr)

	if err := backfiller.Run(ctx); err != nil {
		return fmt.Errorf("backfill failed: %w", err)
	}

	return nil
}

func reindexCommand(c *cli.Context) error {
	ctx := context.Background()

	// Drop the old schema before the database opens the index
	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	indexPath := peermatch.SearchIndexPath(cfg.Storage.DataDir)
	if err := sqlite.ResetSchema(indexPath); err != nil {
		return fmt.Errorf("failed to reset search index: %w", err)
	}

	// Open database
	db, err := openDatabase(peermatch.WithoutEmbedding())
	if err != nil {
		return err
	}
	defer db.Close()

	profiles, err := db.Repositories().Profiles.ListActiveProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	for _, profile := range profiles {
		doc := core.BuildSearchDocument(profile)
		if err := db.SearchIndex().Index(ctx, &doc); err != nil {
			return fmt.Errorf("failed to index profile %d: %w", profile.Id, err)
		}
	}

	fmt.Fprintf(os.Stderr, "Database: %s\n", cfg.Storage.DataDir)
	fmt.Fprintf(os.Stderr, "Reindexed %d profiles\n", len(profiles))

	return nil
}

func statsCommand(c *cli.Context) error {
	ctx := context.Background()

	// Open database
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := db.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to collect stats: %w", err)
	}
	caps := db.Capabilities()

	version, dirty, err := sqlite.SchemaVersion(peermatch.SearchIndexPath(cfg.Storage.DataDir))
	if err != nil {
		return fmt.Errorf("failed to read index schema version: %w", err)
	}

	fmt.Printf("Database: %s\n", cfg.Storage.DataDir)
	fmt.Printf("Profiles: %d active, %d total\n", stats.ActiveProfiles, stats.TotalProfiles)
	fmt.Printf("Search index: %d profiles indexed (schema v%d", stats.Index.IndexedProfiles, version)
	if dirty {
		fmt.Printf(", dirty")
	}
	fmt.Printf(")\n")
	if !stats.Index.LastIndexedAt.IsZero() {
		fmt.Printf("Last indexed: %s\n", stats.Index.LastIndexedAt.Format(time.RFC3339))
	}
	fmt.Printf("Embeddings: %d stored", stats.Embeddings.TotalEmbeddings)
	if stats.Embeddings.Available {
		fmt.Printf(" (provider configured)")
	} else {
		fmt.Printf(" (no provider)")
	}
	fmt.Println()
	fmt.Printf("Capabilities: keyword=%t semantic=%t hybrid=%t\n",
		caps.KeywordSearch, caps.SemanticSearch, caps.HybridSearch)

	if len(stats.TopSkills) > 0 {
		fmt.Println("Top skills:")
		for _, skill := range stats.TopSkills {
			fmt.Printf("  %s (%d)\n", skill.Name, skill.Count)
		}
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
