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
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/sharki"
	"github.com/poiesic/sharki/ai"
	"github.com/poiesic/sharki/ai/openai"
	"github.com/poiesic/sharki/storage/badger"
	"github.com/poiesic/sharki/storage/sqlite"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "sharki",
		Usage: "Campus information assistant for Universidad del Pacífico",
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
				Name:   "chat",
				Usage:  "Start an interactive chat session",
				Action: chatCommand,
				Flags:  assistantFlags(),
			},
			{
				Name:      "ask",
				Usage:     "Answer a single query and exit",
				ArgsUsage: "QUERY",
				Action:    askCommand,
				Flags:     assistantFlags(),
			},
			{
				Name:      "action",
				Usage:     "Run a quick action (rooms, staff, schedules, contacts)",
				ArgsUsage: "ACTION",
				Action:    actionCommand,
				Flags:     assistantFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func assistantFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to SQLite record database (uses built-in dataset if omitted)",
		},
		&cli.StringFlag{
			Name:  "snapshot-db",
			Usage: "Path to BadgerDB snapshot directory",
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name (semantic search disabled if omitted)",
		},
	}
}

// buildAssistant assembles an assistant from the command flags.
func buildAssistant(c *cli.Context) (*sharki.Assistant, error) {
	var opts []sharki.AssistantOption

	if dbPath := c.String("db"); dbPath != "" {
		store, err := sqlite.NewStore(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open record store: %w", err)
		}
		opts = append(opts, sharki.WithRecordStore(store))
	}

	if snapshotPath := c.String("snapshot-db"); snapshotPath != "" {
		snapshots, err := badger.OpenSnapshotStore(snapshotPath, false)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot store: %w", err)
		}
		opts = append(opts, sharki.WithSnapshotStore(snapshots))
	}

	if model := c.String("embedding-model"); model != "" {
		aiConfig := ai.NewConfig(
			ai.WithEmbeddingHost(c.String("embedding-host")),
			ai.WithEmbeddingModel(model),
		)
		if err := aiConfig.Validate(); err != nil {
			return nil, fmt.Errorf("invalid AI configuration: %w", err)
		}

		provider, err := openai.NewProvider(aiConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create AI provider: %w", err)
		}
		opts = append(opts, sharki.WithAIProvider(provider))
	}

	assistant := sharki.NewAssistant(opts...)
	if err := assistant.Initialize(context.Background()); err != nil {
		assistant.Close()
		return nil, err
	}
	return assistant, nil
}

func chatCommand(c *cli.Context) error {
	assistant, err := buildAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	fmt.Println(assistant.Greeting())
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "salir" || query == "exit" {
			break
		}

		reply, err := assistant.ProcessQuery(c.Context, query)
		if err != nil {
			return err
		}
		fmt.Println(reply)
		fmt.Println()
	}

	return scanner.Err()
}

func askCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("query is required")
	}

	assistant, err := buildAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	reply, err := assistant.ProcessQuery(c.Context, strings.Join(c.Args().Slice(), " "))
	if err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}

func actionCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("exactly one action is required (rooms, staff, schedules, contacts)")
	}

	assistant, err := buildAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	reply, err := assistant.ProcessQuickAction(c.Args().First())
	if err != nil {
		return err
	}

	fmt.Println(reply)
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
