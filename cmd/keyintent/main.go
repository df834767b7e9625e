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
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/jeredhiggins/keyintent/ai"
	"github.com/jeredhiggins/keyintent/ai/openai"
	"github.com/jeredhiggins/keyintent/core"
	"github.com/jeredhiggins/keyintent/intent"
	"github.com/jeredhiggins/keyintent/pipeline"
	"github.com/jeredhiggins/keyintent/storage/badger"
	"github.com/jeredhiggins/keyintent/taxonomy"
)

func main() {
	// Optional .env in the working directory; flags and real env win.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "keyintent",
		Usage: "Keyword intelligence pipeline: intent, entities, and content topics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "process",
				Usage:  "Enrich keywords with intent, entities, and topics",
				Action: processCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "Keyword file, one keyword per line (\"-\" for stdin)",
						Value:   "-",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "CSV output file (\"-\" for stdout)",
						Value:   "-",
					},
					&cli.StringFlag{
						Name:    "categories",
						Usage:   "Newline-delimited content taxonomy file",
						Value:   "data/google_categories.txt",
						EnvVars: []string{"KEYINTENT_CATEGORIES"},
					},
					&cli.StringFlag{
						Name:    "embedding-host",
						Usage:   "Embedding service host URL",
						Value:   "http://localhost:11434/v1",
						EnvVars: []string{"KEYINTENT_EMBEDDING_HOST"},
					},
					&cli.StringFlag{
						Name:    "embedding-model",
						Usage:   "Embedding model name",
						Value:   "embeddinggemma",
						EnvVars: []string{"KEYINTENT_EMBEDDING_MODEL"},
					},
					&cli.StringFlag{
						Name:    "extractor-host",
						Usage:   "Entity extraction host URL (defaults to embedding-host)",
						EnvVars: []string{"KEYINTENT_EXTRACTOR_HOST"},
					},
					&cli.StringFlag{
						Name:    "extractor-model",
						Usage:   "Entity extraction model name",
						Value:   "qwen2.5:3b",
						EnvVars: []string{"KEYINTENT_EXTRACTOR_MODEL"},
					},
					&cli.Float64Flag{
						Name:  "confidence-threshold",
						Usage: "Minimum confidence for extracted entities",
						Value: 0.5,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of keywords to process in each batch",
						Value: pipeline.DefaultBatchSize,
					},
					&cli.Float64Flag{
						Name:  "topic-margin",
						Usage: "Dominance margin for single-topic assignment",
						Value: 0,
					},
					&cli.StringFlag{
						Name:    "cache-dir",
						Usage:   "BadgerDB directory for the category embedding cache",
						EnvVars: []string{"KEYINTENT_CACHE_DIR"},
					},
					&cli.StringFlag{
						Name:  "rules",
						Usage: "YAML intent rule table replacing the built-in rules",
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for embedding calls",
						Value: pipeline.DefaultMaxRetries,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: csv or table",
						Value:   "csv",
					},
				},
			},
			{
				Name:   "classify",
				Usage:  "Label keyword intent only, no model services required",
				Action: classifyCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "Keyword file, one keyword per line (\"-\" for stdin)",
						Value:   "-",
					},
					&cli.StringFlag{
						Name:  "rules",
						Usage: "YAML intent rule table replacing the built-in rules",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func processCommand(c *cli.Context) error {
	ctx := context.Background()

	raw, err := readInput(c.String("input"))
	if err != nil {
		return err
	}

	extractorHost := c.String("extractor-host")
	if extractorHost == "" {
		extractorHost = c.String("embedding-host")
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithExtractorHost(extractorHost),
		ai.WithExtractorModel(c.String("extractor-model")),
		ai.WithConfidenceThreshold(c.Float64("confidence-threshold")),
	)

	provider, err := openai.NewProvider(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}
	defer provider.Close()

	store := taxonomy.NewStore(c.String("categories"))

	opts := []pipeline.Option{
		pipeline.WithBatchSize(c.Int("batch-size")),
		pipeline.WithEmbeddingModel(c.String("embedding-model")),
		pipeline.WithMaxRetries(c.Int("max-retries")),
		pipeline.WithRetryBaseDelay(c.Duration("retry-delay")),
		pipeline.WithProgressWriter(os.Stderr),
	}

	if margin := c.Float64("topic-margin"); margin > 0 {
		opts = append(opts, pipeline.WithTopicMargin(margin))
	}

	if cacheDir := c.String("cache-dir"); cacheDir != "" {
		backend, err := badger.OpenBackend(cacheDir, false)
		if err != nil {
			return fmt.Errorf("failed to open embedding cache: %w", err)
		}
		defer backend.Close()

		cache, err := badger.NewVectorCache(backend)
		if err != nil {
			return fmt.Errorf("failed to create embedding cache: %w", err)
		}
		opts = append(opts, pipeline.WithVectorCache(cache))
	}

	if rulesPath := c.String("rules"); rulesPath != "" {
		classifier, err := loadClassifier(rulesPath)
		if err != nil {
			return err
		}
		opts = append(opts, pipeline.WithClassifier(classifier))
	}

	p, err := pipeline.NewPipeline(provider, store, opts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer p.Release()

	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintf(os.Stderr, "Extractor host: %s\n", extractorHost)
	fmt.Fprintf(os.Stderr, "Extractor model: %s\n", c.String("extractor-model"))
	fmt.Fprintf(os.Stderr, "Categories: %s\n", c.String("categories"))
	fmt.Fprintln(os.Stderr)

	table, err := p.Process(ctx, raw)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	out, closeOut, err := openOutput(c.String("output"))
	if err != nil {
		return err
	}
	defer closeOut()

	switch c.String("format") {
	case "csv":
		err = table.WriteCSV(out)
	case "table":
		err = writeAlignedTable(out, table)
	default:
		return fmt.Errorf("invalid format %q: must be csv or table", c.String("format"))
	}
	if err != nil {
		return fmt.Errorf("writing results: %w", err)
	}

	printIntentSummary(os.Stderr, table)
	return nil
}

func classifyCommand(c *cli.Context) error {
	raw, err := readInput(c.String("input"))
	if err != nil {
		return err
	}

	classifier, err := loadClassifier(c.String("rules"))
	if err != nil {
		return err
	}

	for _, keyword := range pipeline.SplitLines(raw) {
		fmt.Printf("%s\t%s\n", keyword, classifier.Classify(keyword))
	}
	return nil
}

// loadClassifier builds an intent classifier from the given YAML rule
// file, or the built-in rules when path is empty.
func loadClassifier(path string) (*intent.Classifier, error) {
	if path == "" {
		return intent.NewClassifier()
	}
	rules, err := intent.LoadRules(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load rule table: %w", err)
	}
	return intent.NewClassifier(intent.WithRules(rules))
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input file: %w", err)
	}
	return string(data), nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func writeAlignedTable(w io.Writer, table *pipeline.ResultTable) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(pipeline.ResultColumns, "\t"))
	for i := 0; i < table.Len(); i++ {
		fmt.Fprintln(tw, strings.Join(table.Row(i), "\t"))
	}
	return tw.Flush()
}

func printIntentSummary(w io.Writer, table *pipeline.ResultTable) {
	counts := table.IntentCounts()
	fmt.Fprintf(w, "\nProcessed %d keywords\n", table.Len())
	for _, label := range core.IntentLabels {
		if counts[label] > 0 {
			fmt.Fprintf(w, "  %-25s %d\n", label, counts[label])
		}
	}
}

func setupLogger(c *cli.Context) error {
	level, err := parseLogLevel(c.String("log-level"))
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", s)
	}
}
