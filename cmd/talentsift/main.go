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

	"github.com/urfave/cli/v2"

	"github.com/poiesic/talentsift"
	"github.com/poiesic/talentsift/ai"
	"github.com/poiesic/talentsift/config"
	"github.com/poiesic/talentsift/core"
	"github.com/poiesic/talentsift/ingest"
	"github.com/poiesic/talentsift/retrieval"
	"github.com/poiesic/talentsift/semindex"
	"github.com/poiesic/talentsift/skills"
)

// cfg is loaded once in the Before hook and read by every command.
var cfg *config.Config

func main() {
	app := &cli.App{
		Name:  "talentsift",
		Usage: "Rank and query resume candidates against job descriptions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error); overrides config",
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Aliases: []string{"d"},
				Usage:   "Path to the data directory; overrides config",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Ingest resume text files from a directory",
				ArgsUsage: "<directory>",
				Action:    ingestCommand,
			},
			{
				Name:      "rank",
				Usage:     "Rank the corpus against a job description file",
				ArgsUsage: "<jd-file>",
				Action:    rankCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of results to keep (0 keeps all)",
						Value:   0,
					},
				},
			},
			{
				Name:   "index",
				Usage:  "Build the semantic vector index over the corpus",
				Action: indexCommand,
			},
			{
				Name:      "ask",
				Usage:     "Ask a question about the candidate corpus",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of candidates to feed the answer",
						Value:   5,
					},
					&cli.BoolFlag{
						Name:  "include-context",
						Usage: "Include resume excerpts in the prompt",
						Value: true,
					},
					&cli.Float64Flag{
						Name:  "min-score",
						Usage: "Keep only candidates at or above this combined score",
					},
					&cli.IntFlag{
						Name:  "min-rank",
						Usage: "Keep only candidates ranked at or better than this batch position",
					},
					&cli.IntFlag{
						Name:  "max-rank",
						Usage: "Keep only candidates ranked at or worse than this batch position",
					},
					&cli.StringFlag{
						Name:  "skills",
						Usage: "Comma-separated skills the candidate must match at least one of",
					},
				},
			},
			{
				Name:   "status",
				Usage:  "Show corpus, index, and ranking status",
				Action: statusCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup(c *cli.Context) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg = loaded

	if v := c.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v := c.String("data-dir"); v != "" {
		cfg.DataDir = v
	}

	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", cfg.LogLevel)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// openCollection wires a Collection from the loaded configuration.
func openCollection() (*talentsift.Collection, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(cfg.EmbeddingHost),
		ai.WithChatHost(cfg.ChatHost),
		ai.WithEmbeddingModel(cfg.EmbeddingModel),
		ai.WithChatModel(cfg.ChatModel),
		ai.WithToken(cfg.Token),
		ai.WithTemperature(cfg.Temperature),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	opts := []talentsift.CollectionOption{
		talentsift.WithAIConfig(aiConfig),
		talentsift.WithRetrievalOptions(
			retrieval.WithCacheTTL(cfg.CacheTTL()),
			retrieval.WithShortlistSize(cfg.ShortlistSize),
		),
		talentsift.WithBuilderOptions(
			semindex.WithBatchSize(cfg.EmbedBatchSize),
		),
	}
	if cfg.PoolSize > 0 {
		opts = append(opts, talentsift.WithScoringPoolSize(cfg.PoolSize))
	}

	collection, err := talentsift.OpenCollection(cfg.DataDir, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open collection: %w", err)
	}
	return collection, nil
}

func ingestCommand(c *cli.Context) error {
	dir := c.Args().First()
	if dir == "" {
		return fmt.Errorf("resume directory is required")
	}

	profiles, err := ingest.LoadDirectory(dir, skills.DefaultVocabulary())
	if err != nil {
		return fmt.Errorf("failed to load resumes: %w", err)
	}

	collection, err := openCollection()
	if err != nil {
		return err
	}
	defer collection.Close()

	if err := collection.IngestProfiles(context.Background(), profiles...); err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Ingested %d profiles from %s\n", len(profiles), dir)
	return nil
}

func rankCommand(c *cli.Context) error {
	jdPath := c.Args().First()
	if jdPath == "" {
		return fmt.Errorf("job description file is required")
	}

	jdText, err := os.ReadFile(jdPath)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	collection, err := openCollection()
	if err != nil {
		return err
	}
	defer collection.Close()

	result, err := collection.Rank(context.Background(), core.RankQuery{
		Text: string(jdText),
		TopK: c.Int("top-k"),
	})
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	fmt.Printf("Job description skills: %s\n\n", strings.Join(result.JDSkills, ", "))
	for _, r := range result.Results {
		fmt.Printf("%3d. %-30s combined=%.4f lexical=%.4f skill=%.4f\n",
			r.Rank, r.Filename, r.CombinedScore, r.LexicalScore, r.SkillScore)
		if len(r.MatchedSkills) > 0 {
			fmt.Printf("     matched: %s\n", strings.Join(r.MatchedSkills, ", "))
		}
		if len(r.MissingSkills) > 0 {
			fmt.Printf("     missing: %s\n", strings.Join(r.MissingSkills, ", "))
		}
	}
	return nil
}

func indexCommand(c *cli.Context) error {
	collection, err := openCollection()
	if err != nil {
		return err
	}
	defer collection.Close()

	stats, err := collection.BuildIndex(context.Background())
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Index built: %d vectors, dimension %d\n",
		stats.VectorCount, stats.Dimension)
	return nil
}

func askCommand(c *cli.Context) error {
	question := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(question) == "" {
		return fmt.Errorf("question is required")
	}

	query := core.RetrievalQuery{
		Text:           question,
		TopK:           c.Int("top-k"),
		IncludeContext: c.Bool("include-context"),
	}
	if c.IsSet("min-score") {
		v := c.Float64("min-score")
		query.Filters.MinScore = &v
	}
	if c.IsSet("min-rank") {
		v := c.Int("min-rank")
		query.Filters.MinRankPosition = &v
	}
	if c.IsSet("max-rank") {
		v := c.Int("max-rank")
		query.Filters.MaxRankPosition = &v
	}
	if v := c.String("skills"); v != "" {
		query.Filters.RequiredSkills = strings.Split(v, ",")
	}

	collection, err := openCollection()
	if err != nil {
		return err
	}
	defer collection.Close()

	chunks, err := collection.Query(context.Background(), query)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	for chunk := range chunks {
		if chunk.Err != nil {
			fmt.Println()
			return fmt.Errorf("answer stream failed: %w", chunk.Err)
		}
		fmt.Print(chunk.Text)
	}
	fmt.Println()
	return nil
}

func statusCommand(c *cli.Context) error {
	collection, err := openCollection()
	if err != nil {
		return err
	}
	defer collection.Close()

	status, err := collection.Status(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read status: %w", err)
	}

	fmt.Printf("Profiles:  %d\n", status.ProfileCount)
	if status.IndexBuilt {
		fmt.Printf("Index:     %d vectors, dimension %d, built %s\n",
			status.IndexStats.VectorCount,
			status.IndexStats.Dimension,
			status.IndexStats.BuiltAt.Format("2006-01-02 15:04:05"))
	} else {
		fmt.Println("Index:     not built")
	}
	if status.RankingAvailable {
		fmt.Printf("Ranking:   available, ranked at %s\n", status.RankedAt)
	} else {
		fmt.Println("Ranking:   none")
	}
	return nil
}
