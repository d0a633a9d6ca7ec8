package core

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/tripgraph/tripgraph/internal/core/model"
)

type MockDriver struct {
	ExecuteFunc func(query string, params map[string]interface{}) (neo4j.EagerResult, error)
	Queries     []string
	Params      []map[string]interface{}
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.Queries = append(m.Queries, query)
	m.Params = append(m.Params, params)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(query, params)
	}
	return neo4j.EagerResult{}, nil
}

func (m *MockDriver) BuildIndices(ctx context.Context) error { return nil }

func (m *MockDriver) Close(ctx context.Context) error { return nil }

// neighborRecord builds a record in the shape the neighbor query
// returns.
func neighborRecord(rel, id, name, typ, desc string, tags, labels []string) *neo4j.Record {
	return &neo4j.Record{
		Keys:   []string{"rel", "labels", "id", "name", "type", "description", "tags"},
		Values: []interface{}{rel, toAnySlice(labels), id, name, typ, desc, toAnySlice(tags)},
	}
}

func connectionRecord(from, to, toName string) *neo4j.Record {
	return &neo4j.Record{
		Keys:   []string{"from_city", "to_city", "to_city_name"},
		Values: []interface{}{from, to, toName},
	}
}

func toAnySlice(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

type MockEmbedder struct {
	Vector []float32
	Err    error
	Calls  int
}

func (m *MockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Vector, nil
}

type MockIndex struct {
	Matches    []model.VectorMatch
	Err        error
	Calls      int
	LastVector []float32
	LastTopK   int
}

func (m *MockIndex) Query(ctx context.Context, vector []float32, topK int) ([]model.VectorMatch, error) {
	m.Calls++
	m.LastVector = vector
	m.LastTopK = topK
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Matches, nil
}

type MockChat struct {
	Response     string
	Err          error
	Calls        int
	LastMessages []model.PromptMessage
}

func (m *MockChat) Complete(ctx context.Context, messages []model.PromptMessage) (string, error) {
	m.Calls++
	m.LastMessages = messages
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
