package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripgraph/tripgraph/internal/core/model"
)

func TestRetrieve(t *testing.T) {
	index := &MockIndex{Matches: []model.VectorMatch{
		{ID: "a", Score: 0.9},
		{ID: "b", Score: 0.7},
	}}
	embedder := &MockEmbedder{Vector: []float32{0.1, 0.2, 0.3}}

	r := NewRetriever(embedder, index, 3)
	matches := r.Retrieve(context.Background(), "beaches", 5)

	assert.Len(t, matches, 2)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, index.LastVector)
	assert.Equal(t, 5, index.LastTopK)
	// Scores come back non-increasing.
	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i].Score, matches[i-1].Score)
	}
}

func TestRetrieve_EmbeddingFailureFallsBackToZeroVector(t *testing.T) {
	index := &MockIndex{Matches: []model.VectorMatch{{ID: "a", Score: 0.5}}}
	embedder := &MockEmbedder{Err: fmt.Errorf("service down")}

	r := NewRetriever(embedder, index, 4)
	matches := r.Retrieve(context.Background(), "beaches", 5)

	// Degraded, not failed: the zero vector still reaches the index.
	assert.Equal(t, []float32{0, 0, 0, 0}, index.LastVector)
	assert.Len(t, matches, 1)
}

func TestRetrieve_IndexFailureReturnsEmpty(t *testing.T) {
	index := &MockIndex{Err: fmt.Errorf("index down")}
	embedder := &MockEmbedder{Vector: []float32{0.1}}

	r := NewRetriever(embedder, index, 1)
	matches := r.Retrieve(context.Background(), "beaches", 5)

	assert.Empty(t, matches)
}
