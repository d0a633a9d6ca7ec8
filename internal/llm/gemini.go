package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/tripgraph/tripgraph/internal/core/model"
)

type GeminiClient struct {
	client         *genai.Client
	model          string
	embeddingModel string
}

func NewGeminiClient(ctx context.Context, apiKey, chatModel, embeddingModel string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	if embeddingModel == "" {
		embeddingModel = "text-embedding-004"
	}
	return &GeminiClient{
		client:         client,
		model:          chatModel,
		embeddingModel: embeddingModel,
	}, nil
}

func (c *GeminiClient) Complete(ctx context.Context, messages []model.PromptMessage) (string, error) {
	gm := c.client.GenerativeModel(c.model)
	gm.SetMaxOutputTokens(MaxCompletionTokens)
	gm.SetTemperature(CompletionTemperature)

	// Gemini takes the system instruction out of band.
	var userParts []string
	for _, m := range messages {
		if m.Role == model.RoleSystem {
			gm.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(m.Content)}}
			continue
		}
		userParts = append(userParts, m.Content)
	}

	resp, err := gm.GenerateContent(ctx, genai.Text(strings.Join(userParts, "\n\n")))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil && len(resp.Candidates[0].Content.Parts) > 0 {
		if txt, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
			return string(txt), nil
		}
	}
	return "", fmt.Errorf("no response candidates or content")
}

func (c *GeminiClient) Embed(ctx context.Context, text string) ([]float32, error) {
	em := c.client.EmbeddingModel(c.embeddingModel)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, err
	}
	if res.Embedding == nil {
		return nil, fmt.Errorf("no embedding values")
	}
	return res.Embedding.Values, nil
}
