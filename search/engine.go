package search

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/poiesic/sharki/core"
)

// State is the engine's semantic-availability state.
type State int32

const (
	// StateUninitialized means promotion has not been attempted yet.
	// Queries are served via the keyword path.
	StateUninitialized State = iota
	// StateSemanticReady means the vector index is built and queries try
	// the semantic path first.
	StateSemanticReady
	// StateKeywordOnly means the semantic layer failed and will not be
	// retried for the lifetime of this engine.
	StateKeywordOnly
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateSemanticReady:
		return "semantic-ready"
	case StateKeywordOnly:
		return "keyword-only"
	default:
		return "unknown"
	}
}

// Engine resolves queries against an immutable dataset, trying the
// semantic path first when available and falling back to the keyword
// searchers. It owns the single source of truth for which path answered
// a query.
type Engine struct {
	dataset *core.Dataset
	gateway *Gateway
	state   atomic.Int32
	lookup  map[core.Category]map[string]int
	logger  *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine) error

// WithSemanticGateway enables the semantic path. Without a gateway the
// engine serves keyword results only.
func WithSemanticGateway(gateway *Gateway) EngineOption {
	return func(e *Engine) error {
		e.gateway = gateway
		return nil
	}
}

// WithEngineLogger sets a custom logger.
// Default is slog.Default().
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates an engine over the dataset. The dataset must not be
// mutated afterwards.
func NewEngine(dataset *core.Dataset, opts ...EngineOption) (*Engine, error) {
	if dataset == nil {
		return nil, ErrDatasetRequired
	}

	e := &Engine{
		dataset: dataset,
		lookup:  buildLookup(dataset),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

func buildLookup(dataset *core.Dataset) map[core.Category]map[string]int {
	lookup := map[core.Category]map[string]int{
		core.CategoryRooms:     make(map[string]int, len(dataset.Classrooms)),
		core.CategoryStaff:     make(map[string]int, len(dataset.Staff)),
		core.CategorySchedules: make(map[string]int, len(dataset.Schedules)),
		core.CategoryContacts:  make(map[string]int, len(dataset.Contacts)),
	}
	for i, record := range dataset.Classrooms {
		lookup[core.CategoryRooms][record.Id] = i
	}
	for i, record := range dataset.Staff {
		lookup[core.CategoryStaff][record.Id] = i
	}
	for i, record := range dataset.Schedules {
		lookup[core.CategorySchedules][record.Id] = i
	}
	for i, record := range dataset.Contacts {
		lookup[core.CategoryContacts][record.Id] = i
	}
	return lookup
}

// State returns the engine's current state.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// Dataset returns the dataset the engine resolves against.
func (e *Engine) Dataset() *core.Dataset {
	return e.dataset
}

// Initialize attempts promotion to the semantic path by running build,
// typically an index build over the dataset. On success the engine enters
// StateSemanticReady; on failure, or when no gateway is configured, it
// enters StateKeywordOnly and stays there for its lifetime. The build
// error is returned for logging but is not fatal; the engine keeps
// answering via the keyword path.
func (e *Engine) Initialize(ctx context.Context, build func(context.Context) error) error {
	if e.State() != StateUninitialized {
		// Already promoted or demoted.
		return nil
	}

	if e.gateway == nil {
		e.state.Store(int32(StateKeywordOnly))
		e.logger.Info("no semantic gateway configured, serving keyword results only")
		return nil
	}

	if build != nil {
		if err := build(ctx); err != nil {
			e.state.Store(int32(StateKeywordOnly))
			e.logger.Warn("semantic index build failed, degrading to keyword search", "err", err)
			return err
		}
	}

	e.state.Store(int32(StateSemanticReady))
	e.logger.Info("semantic search ready")
	return nil
}

// Resolve answers a query, returning the per-category result lists.
func (e *Engine) Resolve(ctx context.Context, query string) *ResultSet {
	return e.ResolveWithMonitor(ctx, query, nil)
}

// ResolveWithMonitor answers a query with monitoring. The monitor receives
// callbacks at each stage of resolution.
func (e *Engine) ResolveWithMonitor(ctx context.Context, query string, monitor QueryMonitor) *ResultSet {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	normalized := Normalize(query)

	// Empty queries list everything; no point embedding them. The raw
	// query is embedded as-is, the model handles case and accents.
	if e.State() == StateSemanticReady && normalized != "" {
		hits, err := e.gateway.Query(ctx, query)
		if err != nil {
			// Demotion is terminal for this engine's lifetime.
			e.state.CompareAndSwap(int32(StateSemanticReady), int32(StateKeywordOnly))
			e.logger.Warn("semantic query failed, degrading to keyword search", "query", query, "err", err)
			monitor.Demoted(err)
		} else if len(hits) > 0 {
			monitor.AfterSemanticSearch(hits)
			if results := e.collectHits(query, normalized, hits); !results.Empty() {
				monitor.Finish(results)
				return results
			}
			// Every hit referenced an unknown record, so the semantic
			// answer is effectively empty.
		}
		// No hits: fall through to the keyword path for all four
		// categories so answers are never mixed-path.
	}

	results := SearchAll(query, e.dataset)
	monitor.AfterKeywordSearch(results)
	monitor.Finish(results)
	return results
}

// collectHits maps ranked hits back to their records, preserving score
// order within each category.
func (e *Engine) collectHits(query, normalized string, hits []core.RankedHit) *ResultSet {
	results := &ResultSet{
		Query:      query,
		Normalized: normalized,
		Path:       PathSemantic,
	}

	for _, hit := range hits {
		byID, ok := e.lookup[hit.Category]
		if !ok {
			continue
		}
		i, ok := byID[hit.RecordId]
		if !ok {
			e.logger.Warn("hit references unknown record", "category", hit.Category, "id", hit.RecordId)
			continue
		}

		switch hit.Category {
		case core.CategoryRooms:
			results.Rooms = append(results.Rooms, e.dataset.Classrooms[i])
		case core.CategoryStaff:
			results.Staff = append(results.Staff, e.dataset.Staff[i])
		case core.CategorySchedules:
			results.Schedules = append(results.Schedules, e.dataset.Schedules[i])
		case core.CategoryContacts:
			results.Contacts = append(results.Contacts, e.dataset.Contacts[i])
		}
	}

	return results
}
