package vecindex

import "github.com/poiesic/sharki/core"

// Meta identifies the record behind an index entry.
type Meta struct {
	Category core.Category
	RecordId string
}

// Hit is a scored match returned by a similarity query.
type Hit struct {
	Meta  Meta
	Score float32
}

// Index is a nearest-neighbor structure over embedding vectors.
// Implementations must be thread-safe: index build happens once at
// initialization, after which concurrent read-only queries are expected.
type Index interface {
	// Add inserts a vector under the given key. Adding the same key again
	// replaces the previous entry, so re-indexing is idempotent.
	Add(key core.ID, vector []float32, meta Meta) error

	// Query returns up to limit entries with cosine similarity to the given
	// vector of at least minSimilarity, ordered by score descending.
	Query(vector []float32, minSimilarity float32, limit int) []Hit

	// Len returns the number of indexed entries.
	Len() int
}
