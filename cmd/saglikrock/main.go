// Copyright 2026 Sağlık ROCK Authors
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

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/alihaydarkir/saglikrock"
	"github.com/alihaydarkir/saglikrock/ai"
	"github.com/alihaydarkir/saglikrock/config"
)

func main() {
	app := &cli.App{
		Name:  "saglikrock",
		Usage: "Turkish CPR education question answering over a curated knowledge bank",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
				Value:   "config.yaml",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory (overrides config)",
			},
			&cli.StringFlag{
				Name:    "embedding-host",
				Usage:   "Embedding service host URL (overrides config)",
				EnvVars: []string{"SAGLIKROCK_EMBEDDING_HOST"},
			},
			&cli.StringFlag{
				Name:    "embedding-model",
				Usage:   "Embedding model name (overrides config)",
				EnvVars: []string{"SAGLIKROCK_EMBEDDING_MODEL"},
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "index",
				Usage:  "Load the knowledge bank and build the search index",
				Action: indexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "bank",
						Aliases: []string{"b"},
						Usage:   "Path to the JSON knowledge bank (overrides config)",
					},
				},
			},
			{
				Name:      "ask",
				Usage:     "Answer one question from the indexed bank",
				ArgsUsage: "<question>",
				Action:    askCommand,
			},
			{
				Name:   "stats",
				Usage:  "Show index statistics",
				Action: statsCommand,
			},
			{
				Name:   "reindex",
				Usage:  "Re-embed all indexed documents with the configured model",
				Action: reindexCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// setup loads the optional .env file and configures logging.
func setup(c *cli.Context) error {
	godotenv.Load()
	return setupLogger(c)
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// loadConfig reads the YAML config and applies command-line overrides.
func loadConfig(c *cli.Context) (*config.AppConfig, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if db := c.String("db"); db != "" {
		cfg.DBPath = db
	}
	if host := c.String("embedding-host"); host != "" {
		cfg.Embedding.Host = host
	}
	if model := c.String("embedding-model"); model != "" {
		cfg.Embedding.Model = model
	}
	if bank := c.String("bank"); bank != "" {
		cfg.BankPath = bank
	}

	return cfg, nil
}

func openSystem(cfg *config.AppConfig) (*saglikrock.System, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(cfg.Embedding.Host),
		ai.WithEmbeddingModel(cfg.Embedding.Model),
	)

	opts := []saglikrock.SystemOption{
		saglikrock.WithAIConfig(aiConfig),
		saglikrock.WithMaxResults(cfg.Search.MaxResults),
		saglikrock.WithBatchSize(cfg.Index.BatchSize),
	}
	if cfg.Search.PoolSize > 0 {
		opts = append(opts, saglikrock.WithPoolSize(cfg.Search.PoolSize))
	}

	return saglikrock.NewSystem(cfg.DBPath, opts...)
}

func indexCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	system, err := openSystem(cfg)
	if err != nil {
		return fmt.Errorf("failed to start system: %w", err)
	}
	defer system.Close()

	fmt.Fprintf(os.Stderr, "Bank: %s\n", cfg.BankPath)
	fmt.Fprintf(os.Stderr, "Database: %s\n", cfg.DBPath)
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n\n", cfg.Embedding.Model)

	count, err := system.BuildIndex(context.Background(), cfg.BankPath)
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}

	color.Green("✓ Indexed %d documents", count)
	return nil
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("usage: saglikrock ask <question>")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	system, err := openSystem(cfg)
	if err != nil {
		return fmt.Errorf("failed to start system: %w", err)
	}
	defer system.Close()

	response, err := system.Answer(context.Background(), question)
	if err != nil {
		return fmt.Errorf("failed to answer: %w", err)
	}

	fmt.Println(response.Text)

	if response.Success {
		color.Green("✓ Protokol bulundu")
	} else {
		color.Yellow("⚠ Spesifik protokol bulunamadı, öneriler sunuldu")
	}
	color.Cyan("Eşik: %s (%.2f) • Sonuç: %d/%d • Süre: %v",
		response.ThresholdClass, response.Threshold,
		response.QualityCount, response.ResultCount, response.Elapsed)

	return nil
}

func statsCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	system, err := openSystem(cfg)
	if err != nil {
		return fmt.Errorf("failed to start system: %w", err)
	}
	defer system.Close()

	count, err := system.DocumentCount(context.Background())
	if err != nil {
		return fmt.Errorf("failed to count documents: %w", err)
	}

	color.Cyan("Database: %s", cfg.DBPath)
	color.Cyan("Embedding model: %s", cfg.Embedding.Model)
	color.Cyan("Indexed documents: %d", count)
	return nil
}

func reindexCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	system, err := openSystem(cfg)
	if err != nil {
		return fmt.Errorf("failed to start system: %w", err)
	}
	defer system.Close()

	fmt.Fprintf(os.Stderr, "Database: %s\n", cfg.DBPath)
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n\n", cfg.Embedding.Model)

	if err := system.Reindex(context.Background(), os.Stderr); err != nil {
		return fmt.Errorf("reindexing failed: %w", err)
	}
	return nil
}
