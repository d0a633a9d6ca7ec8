package vector

import (
	"context"

	"github.com/tripgraph/tripgraph/internal/core/model"
)

// Index is the similarity-search surface the pipeline depends on.
// Matches come back ordered by descending score, at most topK of them.
type Index interface {
	Query(ctx context.Context, vector []float32, topK int) ([]model.VectorMatch, error)
}
