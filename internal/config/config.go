package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	EmbeddingModel string `toml:"embedding_model"`
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
}

type PineconeConfig struct {
	APIKey    string `toml:"api_key"`
	Host      string `toml:"host"`
	Namespace string `toml:"namespace"`
	Dimension int    `toml:"dimension"`
	TopK      int    `toml:"top_k"`
}

type Neo4jConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type CacheConfig struct {
	Capacity int `toml:"capacity"`
}

type Config struct {
	LLM      LLMConfig      `toml:"llm"`
	Pinecone PineconeConfig `toml:"pinecone"`
	Neo4j    Neo4jConfig    `toml:"neo4j"`
	Cache    CacheConfig    `toml:"cache"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a config usable without a TOML file, relying on env
// overrides for credentials.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.LLM.Provider == "" {
		c.LLM.Provider = "openai"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
	if c.LLM.EmbeddingModel == "" {
		c.LLM.EmbeddingModel = "text-embedding-3-small"
	}
	if c.Pinecone.Dimension == 0 {
		c.Pinecone.Dimension = 1536
	}
	if c.Pinecone.TopK == 0 {
		c.Pinecone.TopK = 5
	}
	if c.Neo4j.URI == "" {
		c.Neo4j.URI = "bolt://localhost:7687"
	}
	if c.Cache.Capacity == 0 {
		c.Cache.Capacity = 1024
	}
}

// ApplyEnv overrides file values with environment variables when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_EMBEDDING_MODEL"); v != "" {
		c.LLM.EmbeddingModel = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && c.LLM.APIKey == "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("PINECONE_API_KEY"); v != "" {
		c.Pinecone.APIKey = v
	}
	if v := os.Getenv("PINECONE_HOST"); v != "" {
		c.Pinecone.Host = v
	}
	if v := os.Getenv("PINECONE_NAMESPACE"); v != "" {
		c.Pinecone.Namespace = v
	}
	if v := os.Getenv("NEO4J_URI"); v != "" {
		c.Neo4j.URI = v
	}
	if v := os.Getenv("NEO4J_USER"); v != "" {
		c.Neo4j.User = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		c.Neo4j.Password = v
	}
}
