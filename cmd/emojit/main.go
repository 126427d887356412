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

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/poiesic/emojit"
	"github.com/poiesic/emojit/catalog"
	"github.com/poiesic/emojit/core"
	"github.com/poiesic/emojit/index"
	"github.com/poiesic/emojit/snapshot"
	"github.com/poiesic/emojit/storage"
	"github.com/poiesic/emojit/storage/badger"
	"github.com/poiesic/emojit/tokenizer"
)

func main() {
	app := &cli.App{
		Name:  "emojit",
		Usage: "Keyword search engine for emoji catalogs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Set logging format (text, json)",
				Value: "text",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "index",
				Usage:  "Build a snapshot from a catalog JSON file",
				Action: indexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "catalog",
						Aliases: []string{"c"},
						Usage:   "Path to catalog JSON file",
					},
					&cli.BoolFlag{
						Name:  "sample",
						Usage: "Build from the embedded sample catalog",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Write the snapshot to this file",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Store the snapshot in this BadgerDB directory",
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "Name to store the snapshot under",
						Value: "default",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of build workers (default: all CPUs)",
					},
					&cli.BoolFlag{
						Name:  "skip-numeric",
						Usage: "Drop pure-numeric tokens while indexing",
					},
					&cli.BoolFlag{
						Name:  "fold-diacritics",
						Usage: "Strip diacritical marks while indexing",
					},
				},
			},
			{
				Name:      "query",
				Usage:     "Search a snapshot",
				ArgsUsage: "<query terms>",
				Action:    queryCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "snapshot",
						Aliases: []string{"s"},
						Usage:   "Path to snapshot file",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB snapshot store",
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "Name of the stored snapshot",
						Value: "default",
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results",
						Value:   20,
					},
					&cli.BoolFlag{
						Name:  "prefix",
						Usage: "Treat the final query term as a prefix",
					},
					&cli.BoolFlag{
						Name:  "best",
						Usage: "Fall back to stemmed and prefix matching",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Print snapshot metadata",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "snapshot",
						Aliases: []string{"s"},
						Usage:   "Path to snapshot file",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB snapshot store",
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "Name of the stored snapshot (omit to list all)",
					},
				},
			},
			{
				Name:   "delete",
				Usage:  "Remove a stored snapshot",
				Action: deleteCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB snapshot store",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "Name of the stored snapshot",
						Value: "default",
					},
				},
			},
			{
				Name:      "tokens",
				Usage:     "Print the token stream for text",
				ArgsUsage: "<text>",
				Action:    tokensCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "skip-numeric",
						Usage: "Drop pure-numeric tokens",
					},
					&cli.BoolFlag{
						Name:  "fold-diacritics",
						Usage: "Strip diacritical marks",
					},
				},
			},
			{
				Name:      "bench",
				Usage:     "Run a concurrent read benchmark over a snapshot",
				ArgsUsage: "[query terms]",
				Action:    benchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "snapshot",
						Aliases: []string{"s"},
						Usage:   "Path to snapshot file",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB snapshot store",
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "Name of the stored snapshot",
						Value: "default",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent readers",
						Value: 8,
					},
					&cli.IntFlag{
						Name:  "count",
						Usage: "Searches per reader",
						Value: 10000,
					},
				},
			},
			{
				Name:   "seed",
				Usage:  "Build the embedded sample catalog into a snapshot store",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB snapshot store",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "Name to store the snapshot under",
						Value: "default",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func indexCommand(c *cli.Context) error {
	if c.String("out") == "" && c.String("db") == "" {
		return fmt.Errorf("either --out or --db is required")
	}

	entries, err := loadCatalog(c)
	if err != nil {
		return err
	}

	var cfgOpts []core.ConfigOption
	if c.Bool("skip-numeric") {
		cfgOpts = append(cfgOpts, core.WithNumericTokens(false))
	}
	if c.Bool("fold-diacritics") {
		cfgOpts = append(cfgOpts, core.WithDiacriticFolding(true))
	}
	cfg := core.NewConfig(cfgOpts...)

	var buildOpts []index.BuildOption
	if w := c.Int("workers"); w > 0 {
		buildOpts = append(buildOpts, index.WithWorkers(w))
	}

	idx, err := index.Build(entries, cfg, buildOpts...)
	if err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}
	blob, err := snapshot.Encode(idx)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if out := c.String("out"); out != "" {
		if err := os.WriteFile(out, blob, 0644); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s: %d entries, %d tokens, %d bytes\n",
			out, idx.EntryCount(), idx.TokenCount(), len(blob))
	}
	if dbPath := c.String("db"); dbPath != "" {
		meta, err := saveSnapshot(dbPath, c.String("name"), blob, idx)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Stored %q: %d entries, %d tokens, %d bytes\n",
			meta.Name, meta.EntryCount, meta.TokenCount, meta.Size)
	}
	return nil
}

func queryCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("query text is required")
	}
	query := strings.Join(c.Args().Slice(), " ")

	blob, err := readSnapshot(c)
	if err != nil {
		return err
	}
	engine := emojit.New()
	if err := engine.LoadSnapshot(blob); err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	limit := c.Int("limit")
	var results []core.SearchResult
	switch {
	case c.Bool("prefix"):
		results, err = engine.SearchPrefix(query, limit)
	case c.Bool("best"):
		results, err = engine.SearchBest(query, limit)
	default:
		results, err = engine.Search(query, limit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %s '%s' (%d)[%0.3f]\n", i, hit.Entry.Symbol, hit.Entry.Name, hit.Entry.Id, hit.Score)
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	if path := c.String("snapshot"); path != "" {
		blob, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read snapshot: %w", err)
		}
		idx, err := snapshot.Decode(blob)
		if err != nil {
			return fmt.Errorf("failed to decode snapshot: %w", err)
		}
		printIndexStats(idx, len(blob))
		return nil
	}

	dbPath := c.String("db")
	if dbPath == "" {
		return fmt.Errorf("either --snapshot or --db is required")
	}
	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()
	repo := badger.NewSnapshotRepository(backend)
	defer repo.Close()

	ctx := context.Background()
	if name := c.String("name"); name != "" {
		meta, err := repo.Meta(ctx, name)
		if err != nil {
			return err
		}
		printMeta(meta)
		return nil
	}

	metas, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		fmt.Println("No snapshots stored")
		return nil
	}
	for _, meta := range metas {
		printMeta(meta)
	}
	return nil
}

func deleteCommand(c *cli.Context) error {
	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()
	repo := badger.NewSnapshotRepository(backend)
	defer repo.Close()

	name := c.String("name")
	if err := repo.Delete(context.Background(), name); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Deleted %q\n", name)
	return nil
}

func tokensCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("text to tokenize is required")
	}

	var cfgOpts []core.ConfigOption
	if c.Bool("skip-numeric") {
		cfgOpts = append(cfgOpts, core.WithNumericTokens(false))
	}
	if c.Bool("fold-diacritics") {
		cfgOpts = append(cfgOpts, core.WithDiacriticFolding(true))
	}

	tok := tokenizer.New(core.NewConfig(cfgOpts...))
	for token := range tok.Tokenize(strings.Join(c.Args().Slice(), " ")) {
		fmt.Println(token)
	}
	return nil
}

func benchCommand(c *cli.Context) error {
	blob, err := readSnapshot(c)
	if err != nil {
		return err
	}
	engine := emojit.New()
	if err := engine.LoadSnapshot(blob); err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	query := "smiling face"
	if c.NArg() > 0 {
		query = strings.Join(c.Args().Slice(), " ")
	}
	workers := c.Int("workers")
	count := c.Int("count")
	if workers <= 0 {
		return fmt.Errorf("workers must be greater than 0")
	}
	if count <= 0 {
		return fmt.Errorf("count must be greater than 0")
	}

	start := time.Now()
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < count; i++ {
				if _, err := engine.Search(query, 10); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	total := workers * count
	fmt.Printf("Ran %d searches for %q across %d readers in %s (%.0f searches/sec)\n",
		total, query, workers, elapsed.Round(time.Millisecond), float64(total)/elapsed.Seconds())
	return nil
}

func seedCommand(c *cli.Context) error {
	entries := catalog.Sample()
	idx, err := index.Build(entries, core.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}
	blob, err := snapshot.Encode(idx)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	meta, err := saveSnapshot(c.String("db"), c.String("name"), blob, idx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Seeded %q: %d entries, %d tokens, %d bytes\n",
		meta.Name, meta.EntryCount, meta.TokenCount, meta.Size)
	return nil
}

// loadCatalog reads entries from --catalog, or the embedded sample
// catalog with --sample.
func loadCatalog(c *cli.Context) ([]core.EmojiEntry, error) {
	if c.Bool("sample") {
		return catalog.Sample(), nil
	}
	path := c.String("catalog")
	if path == "" {
		return nil, fmt.Errorf("either --catalog or --sample is required")
	}
	entries, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return entries, nil
}

// readSnapshot reads snapshot bytes from --snapshot, or from the
// --db store under --name.
func readSnapshot(c *cli.Context) ([]byte, error) {
	if path := c.String("snapshot"); path != "" {
		blob, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot: %w", err)
		}
		return blob, nil
	}

	dbPath := c.String("db")
	if dbPath == "" {
		return nil, fmt.Errorf("either --snapshot or --db is required")
	}
	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()
	repo := badger.NewSnapshotRepository(backend)
	defer repo.Close()

	return repo.Load(context.Background(), c.String("name"))
}

func saveSnapshot(dbPath, name string, blob []byte, idx *index.Index) (storage.SnapshotMeta, error) {
	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return storage.SnapshotMeta{}, fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()
	repo := badger.NewSnapshotRepository(backend)
	defer repo.Close()

	return repo.Save(context.Background(), name, blob, storage.DescribeIndex(idx))
}

func printIndexStats(idx *index.Index, size int) {
	cfg := idx.Config()
	fmt.Printf("Entries:     %d\n", idx.EntryCount())
	fmt.Printf("Tokens:      %d\n", idx.TokenCount())
	fmt.Printf("Format:      v%d\n", snapshot.FormatVersion)
	fmt.Printf("Fingerprint: %016x\n", idx.Fingerprint())
	fmt.Printf("Size:        %d bytes\n", size)
	fmt.Printf("Config:      numeric=%t diacritics=%t name=%g keyword=%g decay=%g bonus=%g\n",
		cfg.IncludeNumericTokens, cfg.FoldDiacritics,
		cfg.NameWeight, cfg.KeywordWeight, cfg.PositionDecay, cfg.FullMatchBonus)
}

func printMeta(meta storage.SnapshotMeta) {
	fmt.Printf("%s: %d entries, %d tokens, format v%d, fingerprint %016x, %d bytes, created %s\n",
		meta.Name, meta.EntryCount, meta.TokenCount, meta.FormatVersion,
		meta.Fingerprint, meta.Size, meta.CreatedAt.Format(time.RFC3339))
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

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(c.String("log-format")) {
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", c.String("log-format"))
	}
	slog.SetDefault(slog.New(handler))

	return nil
}
