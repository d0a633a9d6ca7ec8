package llm

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/tripgraph/tripgraph/internal/core/model"
)

// ClaudeClient synthesizes answers only; Anthropic exposes no
// embedding endpoint, so the factory pairs it with no embedder.
type ClaudeClient struct {
	client *anthropic.Client
	model  string
}

func NewClaudeClient(apiKey, chatModel, baseURL string) *ClaudeClient {
	var opts []anthropic.ClientOption
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}
	return &ClaudeClient{
		client: anthropic.NewClient(apiKey, opts...),
		model:  chatModel,
	}
}

func (c *ClaudeClient) Complete(ctx context.Context, messages []model.PromptMessage) (string, error) {
	temp := float32(CompletionTemperature)
	req := anthropic.MessagesRequest{
		Model:       anthropic.Model(c.model),
		MaxTokens:   MaxCompletionTokens,
		Temperature: &temp,
	}
	for _, m := range messages {
		if m.Role == model.RoleSystem {
			req.System = m.Content
			continue
		}
		req.Messages = append(req.Messages, anthropic.Message{
			Role: anthropic.RoleUser,
			Content: []anthropic.MessageContent{
				anthropic.NewTextMessageContent(m.Content),
			},
		})
	}

	resp, err := c.client.CreateMessages(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Content) > 0 && resp.Content[0].Text != nil {
		return *resp.Content[0].Text, nil
	}
	return "", fmt.Errorf("no response content")
}
