package vecindex

import (
	"math"
	"slices"
	"sync"

	"github.com/poiesic/sharki/core"
)

// MemoryIndex is an exact in-memory cosine similarity index.
// Vectors are normalized to unit length on insert, so similarity reduces
// to a dot product at query time.
type MemoryIndex struct {
	mu      sync.RWMutex
	entries []entry
	byKey   map[core.ID]int
}

type entry struct {
	key    core.ID
	vector []float32
	meta   Meta
}

var _ Index = (*MemoryIndex)(nil)

// NewMemoryIndex creates an empty in-memory index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		byKey: make(map[core.ID]int),
	}
}

// Add inserts a vector under the given key, replacing any previous entry.
func (ix *MemoryIndex) Add(key core.ID, vector []float32, meta Meta) error {
	if len(vector) == 0 {
		return ErrEmptyVector
	}

	normalized := normalize(vector)

	ix.mu.Lock()
	defer ix.mu.Unlock()

	if pos, ok := ix.byKey[key]; ok {
		ix.entries[pos] = entry{key: key, vector: normalized, meta: meta}
		return nil
	}

	ix.byKey[key] = len(ix.entries)
	ix.entries = append(ix.entries, entry{key: key, vector: normalized, meta: meta})
	return nil
}

// Query returns up to limit entries with similarity >= minSimilarity,
// ordered by score descending.
func (ix *MemoryIndex) Query(vector []float32, minSimilarity float32, limit int) []Hit {
	if len(vector) == 0 || limit <= 0 {
		return nil
	}

	normalized := normalize(vector)

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var hits []Hit
	for _, e := range ix.entries {
		// Cosine similarity (dot product for normalized vectors)
		similarity := dotProduct(normalized, e.vector)
		if similarity >= minSimilarity {
			hits = append(hits, Hit{Meta: e.meta, Score: similarity})
		}
	}

	// Sort by similarity descending. A stable sort keeps insertion order
	// among equal scores.
	slices.SortStableFunc(hits, func(a, b Hit) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}

	return hits
}

// Len returns the number of indexed entries.
func (ix *MemoryIndex) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

// normalize returns a unit-length copy of the vector.
// Zero vectors are returned unchanged.
func normalize(vector []float32) []float32 {
	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	out := make([]float32, len(vector))
	if sumSquares == 0 {
		copy(out, vector)
		return out
	}
	norm := float32(1.0 / math.Sqrt(sumSquares))
	for i, v := range vector {
		out[i] = v * norm
	}
	return out
}

// dotProduct calculates the dot product of two vectors.
func dotProduct(a, b []float32) float32 {
	var sum float32
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
