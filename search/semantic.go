package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/sharki/ai"
	"github.com/poiesic/sharki/core"
	"github.com/poiesic/sharki/vecindex"
)

const (
	// defaultQueryTimeout bounds the embedding call for one query.
	defaultQueryTimeout = 5 * time.Second

	// defaultMinSimilarity is the cosine similarity cutoff for hits.
	defaultMinSimilarity = 0.60

	// defaultMaxHits bounds the number of ranked hits per query.
	defaultMaxHits = 10
)

// Gateway converts a query into ranked hits against the vector index.
type Gateway struct {
	embedder      ai.Embedder
	index         vecindex.Index
	timeout       time.Duration
	minSimilarity float32
	maxHits       int
	logger        *slog.Logger
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway) error

// WithQueryTimeout sets the per-query embedding timeout.
// Default is 5 seconds.
func WithQueryTimeout(timeout time.Duration) GatewayOption {
	return func(g *Gateway) error {
		if timeout <= 0 {
			return fmt.Errorf("query timeout must be positive")
		}
		g.timeout = timeout
		return nil
	}
}

// WithMinSimilarity sets the cosine similarity cutoff.
// Default is 0.60.
func WithMinSimilarity(minSimilarity float32) GatewayOption {
	return func(g *Gateway) error {
		g.minSimilarity = minSimilarity
		return nil
	}
}

// WithMaxHits sets the maximum number of ranked hits returned per query.
// Default is 10.
func WithMaxHits(maxHits int) GatewayOption {
	return func(g *Gateway) error {
		if maxHits < 1 {
			return fmt.Errorf("max hits must be at least 1")
		}
		g.maxHits = maxHits
		return nil
	}
}

// WithGatewayLogger sets a custom logger.
// Default is slog.Default().
func WithGatewayLogger(logger *slog.Logger) GatewayOption {
	return func(g *Gateway) error {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
		return nil
	}
}

// NewGateway creates a gateway over the given embedder and index.
func NewGateway(embedder ai.Embedder, index vecindex.Index, opts ...GatewayOption) (*Gateway, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if index == nil {
		return nil, ErrIndexRequired
	}

	g := &Gateway{
		embedder:      embedder,
		index:         index,
		timeout:       defaultQueryTimeout,
		minSimilarity: defaultMinSimilarity,
		maxHits:       defaultMaxHits,
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Query embeds the text and returns ranked hits with scores descending.
// Any embedding failure or timeout is reported as ErrProviderUnavailable.
func (g *Gateway) Query(ctx context.Context, text string) ([]core.RankedHit, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	embedding, err := g.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	matches := g.index.Query(embedding, g.minSimilarity, g.maxHits)

	hits := make([]core.RankedHit, len(matches))
	for i, match := range matches {
		hits[i] = core.RankedHit{
			Category: match.Meta.Category,
			RecordId: match.Meta.RecordId,
			Score:    match.Score,
		}
	}
	return hits, nil
}
