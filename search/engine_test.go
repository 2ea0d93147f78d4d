package search

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

// indexDataset embeds every record with the given embedder and inserts the
// vectors into the index.
func indexDataset(t *testing.T, embedder *mock.MockEmbedder, index vecindex.Index, ds *core.Dataset) {
	t.Helper()
	ctx := context.Background()
	for _, record := range core.IndexRecords(ds) {
		vector, err := embedder.EmbedText(ctx, record.SearchableText)
		require.NoError(t, err)
		require.NoError(t, index.Add(record.Key, vector, vecindex.Meta{
			Category: record.Category,
			RecordId: record.RecordId,
		}))
	}
}

func newSemanticEngine(t *testing.T, embedder *mock.MockEmbedder) *Engine {
	t.Helper()
	ds := dataset.Default()

	index := vecindex.NewMemoryIndex()
	indexDataset(t, embedder, index, ds)

	gateway, err := NewGateway(embedder, index)
	require.NoError(t, err)

	engine, err := NewEngine(ds, WithSemanticGateway(gateway))
	require.NoError(t, err)
	require.NoError(t, engine.Initialize(context.Background(), nil))
	require.Equal(t, StateSemanticReady, engine.State())
	return engine
}

func TestNewEngineRequiresDataset(t *testing.T) {
	_, err := NewEngine(nil)
	assert.ErrorIs(t, err, ErrDatasetRequired)
}

func TestEngineWithoutGatewayIsKeywordOnly(t *testing.T) {
	engine, err := NewEngine(dataset.Default())
	require.NoError(t, err)

	require.NoError(t, engine.Initialize(context.Background(), nil))
	assert.Equal(t, StateKeywordOnly, engine.State())

	results := engine.Resolve(context.Background(), "biblioteca")
	assert.Equal(t, PathKeyword, results.Path)
	require.Len(t, results.Contacts, 1)
	assert.Equal(t, "Biblioteca", results.Contacts[0].Area)
}

func TestEngineUninitializedServesKeyword(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	gateway, err := NewGateway(embedder, vecindex.NewMemoryIndex())
	require.NoError(t, err)

	engine, err := NewEngine(dataset.Default(), WithSemanticGateway(gateway))
	require.NoError(t, err)

	results := engine.Resolve(context.Background(), "biblioteca")
	assert.Equal(t, PathKeyword, results.Path)
	assert.Equal(t, 0, embedder.CallCount(), "uninitialized engine must not call the embedder")
}

func TestEngineInitializeBuildFailure(t *testing.T) {
	buildErr := errors.New("model load failed")
	gateway, err := NewGateway(mock.NewMockEmbedder(), vecindex.NewMemoryIndex())
	require.NoError(t, err)

	engine, err := NewEngine(dataset.Default(), WithSemanticGateway(gateway))
	require.NoError(t, err)

	err = engine.Initialize(context.Background(), func(ctx context.Context) error {
		return buildErr
	})
	assert.ErrorIs(t, err, buildErr)
	assert.Equal(t, StateKeywordOnly, engine.State())
}

func TestEngineSemanticPath(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	engine := newSemanticEngine(t, embedder)

	// Querying with a record's exact searchable text embeds to the same
	// deterministic vector, so similarity is 1.0 and the record is a hit.
	target := core.IndexRecords(engine.Dataset())[0]
	results := engine.Resolve(context.Background(), target.SearchableText)

	assert.Equal(t, PathSemantic, results.Path)
	assert.False(t, results.Empty())
	assert.Equal(t, StateSemanticReady, engine.State())
}

func TestEngineDemotesOnProviderFailure(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	engine := newSemanticEngine(t, embedder)

	providerErr := errors.New("connection refused")
	embedder.EmbedTextFunc = func(ctx context.Context, text string) (
		[]float32, error) {
		return nil, providerErr
	}

	// The failing query degrades to the keyword path and produces exactly
	// what a keyword-only engine would.
	results := engine.Resolve(context.Background(), "biblioteca")
	assert.Equal(t, PathKeyword, results.Path)
	require.Len(t, results.Contacts, 1)
	assert.Equal(t, "Biblioteca", results.Contacts[0].Area)
	assert.Empty(t, results.Rooms)
	assert.Empty(t, results.Staff)
	assert.Empty(t, results.Schedules)

	// Demotion is terminal.
	assert.Equal(t, StateKeywordOnly, engine.State())

	calls := embedder.CallCount()
	engine.Resolve(context.Background(), "biblioteca")
	assert.Equal(t, calls, embedder.CallCount(), "demoted engine must not retry the embedder")
}

func TestEngineEmptyHitsFallBackWithoutDemotion(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	ds := dataset.Default()

	// Empty index: the gateway succeeds but returns no hits.
	gateway, err := NewGateway(embedder, vecindex.NewMemoryIndex())
	require.NoError(t, err)

	engine, err := NewEngine(ds, WithSemanticGateway(gateway))
	require.NoError(t, err)
	require.NoError(t, engine.Initialize(context.Background(), nil))

	results := engine.Resolve(context.Background(), "biblioteca")
	assert.Equal(t, PathKeyword, results.Path)
	require.Len(t, results.Contacts, 1)

	assert.Equal(t, StateSemanticReady, engine.State(), "empty results must not demote")
}

func TestEngineStaleHitsFallBackToKeyword(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	ds := dataset.Default()

	// The index holds a hit whose record id no longer exists in the
	// dataset, so the semantic answer resolves to nothing.
	index := vecindex.NewMemoryIndex()
	vector, err := embedder.EmbedText(context.Background(), "biblioteca")
	require.NoError(t, err)
	require.NoError(t, index.Add(core.IDFromContent("contacts/ghost"), vector, vecindex.Meta{
		Category: core.CategoryContacts,
		RecordId: "ghost",
	}))

	gateway, err := NewGateway(embedder, index)
	require.NoError(t, err)

	engine, err := NewEngine(ds, WithSemanticGateway(gateway))
	require.NoError(t, err)
	require.NoError(t, engine.Initialize(context.Background(), nil))

	results := engine.Resolve(context.Background(), "biblioteca")
	assert.Equal(t, PathKeyword, results.Path)
	require.Len(t, results.Contacts, 1)
	assert.Equal(t, "Biblioteca", results.Contacts[0].Area)

	assert.Equal(t, StateSemanticReady, engine.State(), "stale hits must not demote")
}

func TestEngineEmptyQuerySkipsSemantic(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	engine := newSemanticEngine(t, embedder)

	calls := embedder.CallCount()
	results := engine.Resolve(context.Background(), "   ")

	assert.Equal(t, PathKeyword, results.Path)
	assert.Equal(t, calls, embedder.CallCount(), "empty queries must not be embedded")
	assert.Len(t, results.Rooms, len(engine.Dataset().Classrooms))
	assert.Len(t, results.Staff, len(engine.Dataset().Staff))
}

func TestEngineMonitorCallbacks(t *testing.T) {
	engine, err := NewEngine(dataset.Default())
	require.NoError(t, err)
	require.NoError(t, engine.Initialize(context.Background(), nil))

	monitor := &recordingMonitor{}
	engine.ResolveWithMonitor(context.Background(), "biblioteca", monitor)

	assert.Equal(t, "biblioteca", monitor.started)
	assert.True(t, monitor.keywordSeen)
	require.NotNil(t, monitor.finished)
	assert.Equal(t, PathKeyword, monitor.finished.Path)
}

type recordingMonitor struct {
	started     string
	keywordSeen bool
	finished    *ResultSet
}

var _ QueryMonitor = (*recordingMonitor)(nil)

func (m *recordingMonitor) Start(query string)                    { m.started = query }
func (m *recordingMonitor) AfterSemanticSearch(_ []core.RankedHit) {}
func (m *recordingMonitor) Demoted(_ error)                       {}
func (m *recordingMonitor) AfterKeywordSearch(_ *ResultSet)       { m.keywordSeen = true }
func (m *recordingMonitor) Finish(results *ResultSet)             { m.finished = results }
