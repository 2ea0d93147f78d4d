package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/sharki/core"
	"github.com/poiesic/sharki/dataset"
	"github.com/poiesic/sharki/storage/sqlite"
)

var (
	dbPath   = flag.String("db", "./records.db", "path to the SQLite record database")
	seedFile = flag.String("src", "", "JSON file with a dataset to seed instead of the built-in one")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// loadSeed returns the dataset to seed: the contents of -src when given,
// the built-in campus dataset otherwise.
func loadSeed() (*core.Dataset, error) {
	if *seedFile == "" {
		return dataset.Default(), nil
	}

	data, err := os.ReadFile(*seedFile)
	if err != nil {
		return nil, err
	}

	ds := &core.Dataset{}
	if err := json.Unmarshal(data, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

func main() {
	ds, err := loadSeed()
	if err != nil {
		slog.Error("error loading seed data", "err", err)
		os.Exit(1)
	}

	store, err := sqlite.NewStore(*dbPath)
	if err != nil {
		slog.Error("error opening record store", "db", *dbPath, "err", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Seed(context.Background(), ds); err != nil {
		slog.Error("error seeding records", "err", err)
		os.Exit(1)
	}

	slog.Info("records seeded",
		"db", *dbPath,
		"classrooms", len(ds.Classrooms),
		"staff", len(ds.Staff),
		"schedules", len(ds.Schedules),
		"contacts", len(ds.Contacts))
}
