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


package sharki

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/sharki/ai"
	"github.com/poiesic/sharki/answer"
	"github.com/poiesic/sharki/core"
	"github.com/poiesic/sharki/dataset"
	"github.com/poiesic/sharki/ingestion"
	"github.com/poiesic/sharki/search"
	"github.com/poiesic/sharki/storage"
	"github.com/poiesic/sharki/vecindex"
)

// ErrNotInitialized is returned when queries arrive before Initialize.
var ErrNotInitialized = errors.New("assistant not initialized")

// Assistant wires the record store, snapshot cache, embedding provider
// and query engine into one query-answering service.
type Assistant struct {
	store     storage.RecordStore
	snapshots storage.SnapshotStore
	provider  ai.AIProvider
	indexer   *ingestion.Indexer
	engine    *search.Engine
	responder *answer.Responder
	logger    *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*assistantOptions)

type assistantOptions struct {
	store     storage.RecordStore
	snapshots storage.SnapshotStore
	provider  ai.AIProvider
	logger    *slog.Logger
}

// WithRecordStore sets the canonical record store. Without one the
// assistant serves the built-in dataset.
func WithRecordStore(store storage.RecordStore) AssistantOption {
	return func(o *assistantOptions) {
		o.store = store
	}
}

// WithSnapshotStore sets the snapshot cache used when the record store
// is unavailable.
func WithSnapshotStore(snapshots storage.SnapshotStore) AssistantOption {
	return func(o *assistantOptions) {
		o.snapshots = snapshots
	}
}

// WithAIProvider enables semantic search. Without a provider the
// assistant answers with keyword search only.
func WithAIProvider(provider ai.AIProvider) AssistantOption {
	return func(o *assistantOptions) {
		o.provider = provider
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) AssistantOption {
	return func(o *assistantOptions) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// NewAssistant creates an assistant. Call Initialize before processing
// queries.
func NewAssistant(opts ...AssistantOption) *Assistant {
	options := &assistantOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Assistant{
		store:     options.store,
		snapshots: options.snapshots,
		provider:  options.provider,
		logger:    options.logger,
	}
}

// Initialize loads the dataset, builds the query engine and, when an AI
// provider is configured, attempts to build the vector index. Semantic
// failures degrade the assistant to keyword search; they are not fatal.
func (a *Assistant) Initialize(ctx context.Context) error {
	ds := a.loadDataset(ctx)

	if err := core.ValidateDataset(ds); err != nil {
		a.logger.Warn("dataset failed validation, serving it anyway", "err", err)
	}

	engineOpts := []search.EngineOption{search.WithEngineLogger(a.logger)}

	var build func(context.Context) error
	if a.provider != nil {
		index := vecindex.NewMemoryIndex()

		gateway, err := search.NewGateway(a.provider.Embedder(), index,
			search.WithGatewayLogger(a.logger))
		if err != nil {
			return err
		}
		engineOpts = append(engineOpts, search.WithSemanticGateway(gateway))

		indexer, err := ingestion.NewIndexer(a.provider.Embedder(), index,
			ingestion.WithLogger(a.logger))
		if err != nil {
			return err
		}
		a.indexer = indexer
		build = func(ctx context.Context) error {
			return indexer.BuildIndex(ctx, ds)
		}
	}

	engine, err := search.NewEngine(ds, engineOpts...)
	if err != nil {
		return err
	}

	if err := engine.Initialize(ctx, build); err != nil {
		// The engine already demoted itself to keyword-only.
		a.logger.Warn("semantic initialization failed", "err", err)
	}

	responder, err := answer.NewResponder(ds)
	if err != nil {
		return err
	}

	a.engine = engine
	a.responder = responder
	a.logger.Info("assistant initialized", "records", ds.Len(), "state", engine.State().String())
	return nil
}

// loadDataset reads records from the store, falling back to the last
// snapshot and finally to the built-in dataset when no store is
// configured. A configured store that fails with no snapshot available
// yields an empty dataset; the user sees no-results messaging rather
// than an error.
func (a *Assistant) loadDataset(ctx context.Context) *core.Dataset {
	if a.store == nil {
		a.logger.Info("no record store configured, using built-in dataset")
		return dataset.Default()
	}

	ds, err := storage.LoadDataset(ctx, a.store)
	if err == nil {
		a.saveSnapshot(ctx, ds)
		return ds
	}
	a.logger.Warn("record store unavailable", "err", err)

	if a.snapshots != nil {
		snapshot, snapErr := a.snapshots.LoadSnapshot(ctx)
		if snapErr == nil {
			a.logger.Info("serving last known snapshot", "records", snapshot.Len())
			return snapshot
		}
		if !errors.Is(snapErr, storage.ErrNotFound) {
			a.logger.Warn("snapshot load failed", "err", snapErr)
		}
	}

	return &core.Dataset{}
}

func (a *Assistant) saveSnapshot(ctx context.Context, ds *core.Dataset) {
	if a.snapshots == nil {
		return
	}
	if err := a.snapshots.SaveSnapshot(ctx, ds); err != nil {
		a.logger.Warn("snapshot save failed", "err", err)
	}
}

// Greeting returns the assistant's opening message.
func (a *Assistant) Greeting() string {
	return answer.Greeting
}

// ProcessQuery resolves a free-text query and renders the answer.
func (a *Assistant) ProcessQuery(ctx context.Context, query string) (string, error) {
	if a.engine == nil || a.responder == nil {
		return "", ErrNotInitialized
	}

	results := a.engine.Resolve(ctx, query)
	return a.responder.Respond(results), nil
}

// ProcessQuickAction renders the full listing for a quick action
// identifier, bypassing intent resolution.
func (a *Assistant) ProcessQuickAction(action string) (string, error) {
	if a.responder == nil {
		return "", ErrNotInitialized
	}
	return a.responder.RespondAction(answer.QuickAction(action)), nil
}

// State reports which search path the assistant is currently using.
func (a *Assistant) State() search.State {
	if a.engine == nil {
		return search.StateUninitialized
	}
	return a.engine.State()
}

// Close releases the worker pool and closes all configured collaborators.
func (a *Assistant) Close() error {
	if a.indexer != nil {
		a.indexer.Release()
	}

	var errs []error
	if a.provider != nil {
		if err := a.provider.Close(); err != nil {
			a.logger.Error("error closing AI provider", "err", err)
			errs = append(errs, err)
		}
	}
	if a.snapshots != nil {
		if err := a.snapshots.Close(); err != nil {
			a.logger.Error("error closing snapshot store", "err", err)
			errs = append(errs, err)
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Error("error closing record store", "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
