package core

import (
	"context"
	"log"

	"github.com/tripgraph/tripgraph/internal/core/model"
	"github.com/tripgraph/tripgraph/internal/llm"
	"github.com/tripgraph/tripgraph/internal/vector"
)

// Retriever turns query text into top-k scored entity matches from the
// similarity index.
type Retriever struct {
	Embedder  llm.EmbedderClient
	Index     vector.Index
	Dimension int
}

func NewRetriever(embedder llm.EmbedderClient, index vector.Index, dimension int) *Retriever {
	return &Retriever{Embedder: embedder, Index: index, Dimension: dimension}
}

// Retrieve embeds the query and runs the similarity search. An
// embedding failure degrades to a zero vector (arbitrary ranking beats
// no answer); an index failure degrades to zero matches. Downstream
// stages must tolerate both.
func (r *Retriever) Retrieve(ctx context.Context, query string, topK int) []model.VectorMatch {
	vec, err := r.Embedder.Embed(ctx, query)
	if err != nil {
		log.Printf("Error generating embedding: %v", err)
		vec = make([]float32, r.Dimension)
	}

	matches, err := r.Index.Query(ctx, vec, topK)
	if err != nil {
		log.Printf("Vector query failed: %v", err)
		return nil
	}
	return matches
}
