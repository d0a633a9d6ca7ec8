package vector

import (
	"context"
	"fmt"

	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tripgraph/tripgraph/internal/config"
	"github.com/tripgraph/tripgraph/internal/core/model"
)

type PineconeIndex struct {
	index *pinecone.IndexConnection
}

func NewPineconeIndex(cfg config.PineconeConfig) (*PineconeIndex, error) {
	client, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Pinecone client: %w", err)
	}

	index, err := client.Index(pinecone.NewIndexConnParams{
		Host:      cfg.Host,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Pinecone index: %w", err)
	}

	return &PineconeIndex{index: index}, nil
}

// Query runs a similarity search with metadata included and raw vector
// values excluded; the values are never used downstream.
func (p *PineconeIndex) Query(ctx context.Context, vector []float32, topK int) ([]model.VectorMatch, error) {
	resp, err := p.index.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            uint32(topK),
		IncludeValues:   false,
		IncludeMetadata: true,
	})
	if err != nil {
		return nil, err
	}

	matches := make([]model.VectorMatch, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		if m == nil || m.Vector == nil {
			continue
		}
		matches = append(matches, model.VectorMatch{
			ID:       m.Vector.Id,
			Score:    float64(m.Score),
			Metadata: decodeMetadata(m.Vector.Metadata),
		})
	}
	return matches, nil
}

func decodeMetadata(md *structpb.Struct) model.MatchMetadata {
	var out model.MatchMetadata
	if md == nil {
		return out
	}

	fields := md.AsMap()
	if v, ok := fields["name"].(string); ok {
		out.Name = v
	}
	if v, ok := fields["type"].(string); ok {
		out.Type = v
	}
	if v, ok := fields["city"].(string); ok {
		out.City = v
	}
	if raw, ok := fields["tags"].([]interface{}); ok {
		for _, t := range raw {
			if s, ok := t.(string); ok {
				out.Tags = append(out.Tags, s)
			}
		}
	}
	return out
}
