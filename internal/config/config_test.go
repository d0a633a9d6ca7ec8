package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[llm]
provider = "openai"
model = "gpt-4o-mini"

[pinecone]
host = "test-index.svc.pinecone.io"
top_k = 7

[neo4j]
uri = "bolt://graph:7687"
`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "test-index.svc.pinecone.io", cfg.Pinecone.Host)
	assert.Equal(t, 7, cfg.Pinecone.TopK)
	assert.Equal(t, "bolt://graph:7687", cfg.Neo4j.URI)

	// Defaults fill the gaps.
	assert.Equal(t, "text-embedding-3-small", cfg.LLM.EmbeddingModel)
	assert.Equal(t, 1536, cfg.Pinecone.Dimension)
	assert.Equal(t, 1024, cfg.Cache.Capacity)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does/not/exist.toml")
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 5, cfg.Pinecone.TopK)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("PINECONE_API_KEY", "pc-key")
	t.Setenv("NEO4J_PASSWORD", "secret")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "pc-key", cfg.Pinecone.APIKey)
	assert.Equal(t, "secret", cfg.Neo4j.Password)
}
