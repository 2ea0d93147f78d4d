package mock

import (
	"context"
	"hash/fnv"
	"math"
)

// Dimension of the fake vectors. Matches embeddinggemma so tests
// exercise realistic sizes.
const vectorDim = 384

// MockEmbedder is a deterministic ai.Embedder for tests. The same text
// always embeds to the same unit vector, so indexing a record's text and
// querying with an identical string scores 1.0. Failure modes are
// injected through the function fields.
type MockEmbedder struct {
	// EmbedTextFunc overrides EmbedText when set.
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)

	// EmbedTextsFunc overrides EmbedTexts when set.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	callCount int
}

// NewMockEmbedder creates a mock embedder with the deterministic default
// behavior.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// EmbedText returns the text's deterministic vector, or defers to
// EmbedTextFunc when set.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.callCount++

	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	return textVector(text), nil
}

// EmbedTexts returns one deterministic vector per text, or defers to
// EmbedTextsFunc when set.
func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.callCount++

	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = textVector(text)
	}
	return vectors, nil
}

// CallCount returns how many embed calls the mock has served.
func (m *MockEmbedder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected functions.
func (m *MockEmbedder) Reset() {
	m.callCount = 0
	m.EmbedTextFunc = nil
	m.EmbedTextsFunc = nil
}

// textVector derives a unit vector from the text. An LCG seeded with the
// FNV hash of the text fills the components, so distinct texts produce
// unrelated directions while equal texts always coincide.
func textVector(text string) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	state := h.Sum32()

	vector := make([]float32, vectorDim)
	var sumSquares float64
	for i := range vector {
		state = state*1664525 + 1013904223
		component := float32(state%1000) / 1000.0
		vector[i] = component
		sumSquares += float64(component) * float64(component)
	}

	if sumSquares > 0 {
		norm := float32(1.0 / math.Sqrt(sumSquares))
		for i := range vector {
			vector[i] *= norm
		}
	}
	return vector
}
