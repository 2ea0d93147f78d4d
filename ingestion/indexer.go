package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/sharki/ai"
	"github.com/poiesic/sharki/core"
	"github.com/poiesic/sharki/vecindex"
)

// batchSize is the number of records embedded per worker task.
const batchSize = 16

// Indexer builds the vector index from a dataset. Records are embedded
// in batches on a worker pool and inserted into the index as each batch
// completes.
type Indexer struct {
	embedder ai.Embedder
	index    vecindex.Index
	pool     *ants.Pool
	logger   *slog.Logger
}

// Option configures an Indexer.
type Option func(*Indexer) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(ix *Indexer) error {
		if size < 1 {
			size = 1
		}

		if ix.pool != nil {
			ix.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		ix.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Indexer) error {
		if logger == nil {
			logger = slog.Default()
		}
		ix.logger = logger
		return nil
	}
}

// NewIndexer creates a new indexer over the given embedder and index.
func NewIndexer(embedder ai.Embedder, index vecindex.Index, opts ...Option) (*Indexer, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if index == nil {
		return nil, ErrIndexRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	ix := &Indexer{
		embedder: embedder,
		index:    index,
		pool:     pool,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(ix); optErr != nil {
			ix.Release()
			return nil, optErr
		}
	}

	return ix, nil
}

// BuildIndex embeds every record of the dataset and inserts the vectors
// into the index. Returns the first error encountered; a partial build
// leaves the index in an undefined state and should not be used.
func (ix *Indexer) BuildIndex(ctx context.Context, dataset *core.Dataset) error {
	if dataset == nil {
		return ErrDatasetRequired
	}

	records := core.IndexRecords(dataset)
	if len(records) == 0 {
		return nil
	}

	ix.logger.Info("building vector index", "records", len(records))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))
		batch := records[start:end]

		wg.Add(1)
		submitErr := ix.pool.Submit(func() {
			defer wg.Done()
			if err := ix.embedBatch(ctx, batch); err != nil {
				setErr(err)
			}
		})
		if submitErr != nil {
			wg.Done()
			setErr(submitErr)
			break
		}
	}

	wg.Wait()
	return firstErr
}

func (ix *Indexer) embedBatch(ctx context.Context, batch []core.IndexedRecord) error {
	texts := make([]string, len(batch))
	for i, record := range batch {
		texts[i] = record.SearchableText
	}

	ix.logger.Debug("generating embeddings", "records", len(texts))
	vectors, err := ix.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}

	if len(vectors) != len(batch) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(batch), len(vectors))
	}

	for i, record := range batch {
		meta := vecindex.Meta{
			Category: record.Category,
			RecordId: record.RecordId,
		}
		if err := ix.index.Add(record.Key, vectors[i], meta); err != nil {
			return err
		}
	}

	return nil
}

// Release releases the worker pool.
// The indexer should not be used after calling Release.
func (ix *Indexer) Release() {
	if ix.pool != nil {
		ix.pool.Release()
	}
}
