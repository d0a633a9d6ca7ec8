package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tripgraph/tripgraph/internal/core/model"
	"github.com/tripgraph/tripgraph/internal/llm"
)

// ErrEmptyQuery rejects blank input before any external call is made.
var ErrEmptyQuery = errors.New("empty query")

// Pipeline fuses vector retrieval and graph expansion into one prompt
// and delegates answer synthesis to the chat model. Stages are exported
// so drivers (the CLI) can run them stepwise.
type Pipeline struct {
	Retriever *Retriever
	Expander  *Expander
	Chat      llm.ChatClient
	Embedder  *llm.CachingEmbedder
	TopK      int
}

func NewPipeline(retriever *Retriever, expander *Expander, chat llm.ChatClient, embedder *llm.CachingEmbedder, topK int) *Pipeline {
	return &Pipeline{
		Retriever: retriever,
		Expander:  expander,
		Chat:      chat,
		Embedder:  embedder,
		TopK:      topK,
	}
}

// Result is the answer plus the usage counts surfaced by the CLI.
type Result struct {
	Answer           string `json:"answer"`
	Matches          int    `json:"matches"`
	Facts            int    `json:"facts"`
	Connections      int    `json:"connections"`
	CachedEmbeddings int    `json:"cached_embeddings"`
}

// Answer runs the full pipeline. Every external dependency degrades
// locally (zero vector, empty matches, partial facts, error-string
// answer), so the only error returned here is empty input.
func (p *Pipeline) Answer(ctx context.Context, query string) (*Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	matches := p.Retriever.Retrieve(ctx, query, p.TopK)

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}

	facts, connections := p.Expander.Expand(ctx, ids)

	prompt := BuildPrompt(query, matches, facts, connections)
	answer := p.Complete(ctx, prompt)

	return &Result{
		Answer:           answer,
		Matches:          len(matches),
		Facts:            len(facts),
		Connections:      len(connections),
		CachedEmbeddings: p.CacheSize(),
	}, nil
}

// Complete calls the chat model and converts a failure into an
// error-string answer; a broken completion service should not abort a
// query that already has retrieval context behind it.
func (p *Pipeline) Complete(ctx context.Context, messages []model.PromptMessage) string {
	answer, err := p.Chat.Complete(ctx, messages)
	if err != nil {
		return fmt.Sprintf("Error calling completion service: %v", err)
	}
	return answer
}

func (p *Pipeline) CacheSize() int {
	if p.Embedder == nil {
		return 0
	}
	return p.Embedder.Size()
}
