package llm

import (
	"context"

	"github.com/tripgraph/tripgraph/internal/core/model"
)

// Sampling parameters for answer synthesis. Low temperature keeps
// itinerary output consistent across runs.
const (
	MaxCompletionTokens   = 800
	CompletionTemperature = 0.3
)

type ChatClient interface {
	Complete(ctx context.Context, messages []model.PromptMessage) (string, error)
}

type EmbedderClient interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
