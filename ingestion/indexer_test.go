package ingestion

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/sharki/ai/mock"
	"github.com/poiesic/sharki/core"
	"github.com/poiesic/sharki/dataset"
	"github.com/poiesic/sharki/vecindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndexerValidation(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	index := vecindex.NewMemoryIndex()

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewIndexer(nil, index)
		assert.ErrorIs(t, err, ErrEmbedderRequired)
	})

	t.Run("nil index", func(t *testing.T) {
		_, err := NewIndexer(embedder, nil)
		assert.ErrorIs(t, err, ErrIndexRequired)
	})
}

func TestBuildIndex(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	index := vecindex.NewMemoryIndex()

	indexer, err := NewIndexer(embedder, index, WithPoolSize(2))
	require.NoError(t, err)
	defer indexer.Release()

	ds := dataset.Default()
	require.NoError(t, indexer.BuildIndex(context.Background(), ds))

	assert.Equal(t, ds.Len(), index.Len())
}

func TestBuildIndexNilDataset(t *testing.T) {
	indexer, err := NewIndexer(mock.NewMockEmbedder(), vecindex.NewMemoryIndex())
	require.NoError(t, err)
	defer indexer.Release()

	err = indexer.BuildIndex(context.Background(), nil)
	assert.ErrorIs(t, err, ErrDatasetRequired)
}

func TestBuildIndexEmptyDataset(t *testing.T) {
	index := vecindex.NewMemoryIndex()
	indexer, err := NewIndexer(mock.NewMockEmbedder(), index)
	require.NoError(t, err)
	defer indexer.Release()

	require.NoError(t, indexer.BuildIndex(context.Background(), &core.Dataset{}))
	assert.Equal(t, 0, index.Len())
}

func TestBuildIndexPropagatesEmbedderError(t *testing.T) {
	embedErr := errors.New("embedding service down")
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, embedErr
	}

	indexer, err := NewIndexer(embedder, vecindex.NewMemoryIndex())
	require.NoError(t, err)
	defer indexer.Release()

	err = indexer.BuildIndex(context.Background(), dataset.Default())
	assert.ErrorIs(t, err, embedErr)
}
