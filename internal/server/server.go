package server

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tripgraph/tripgraph/internal/config"
	"github.com/tripgraph/tripgraph/internal/core"
	"github.com/tripgraph/tripgraph/internal/driver"
	"github.com/tripgraph/tripgraph/internal/llm"
	"github.com/tripgraph/tripgraph/internal/vector"
)

type Server struct {
	Pipeline *core.Pipeline
	Driver   driver.GraphDriver
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Falling back to defaults plus env", cfgPath, err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	d, err := driver.NewNeo4jDriver(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password)
	if err != nil {
		log.Fatalf("Failed to connect to Neo4j: %v", err)
	}
	if err := d.BuildIndices(context.Background()); err != nil {
		log.Printf("Warning: index bootstrap failed: %v", err)
	}

	index, err := vector.NewPineconeIndex(cfg.Pinecone)
	if err != nil {
		log.Fatalf("Failed to connect to Pinecone: %v", err)
	}

	chat, embedder, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}
	if embedder == nil {
		log.Fatalf("LLM provider %q has no embedding support; similarity search needs one", cfg.LLM.Provider)
	}

	cachingEmbedder := llm.NewCachingEmbedder(embedder, llm.NewEmbeddingCache(cfg.Cache.Capacity))
	retriever := core.NewRetriever(cachingEmbedder, index, cfg.Pinecone.Dimension)
	pipeline := core.NewPipeline(retriever, core.NewExpander(d), chat, cachingEmbedder, cfg.Pinecone.TopK)

	return &Server{Pipeline: pipeline, Driver: d}
}

func (s *Server) Close(ctx context.Context) error {
	return s.Driver.Close(ctx)
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/ask", s.Ask)

	return r
}

type AskRequest struct {
	Query string `json:"query"`
}

func (s *Server) Ask(c *gin.Context) {
	reqID := uuid.New().String()

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := s.Pipeline.Answer(c.Request.Context(), req.Query)
	if err != nil {
		if err == core.ErrEmptyQuery {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Empty query"})
			return
		}
		log.Printf("[%s] pipeline failed: %v", reqID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("[%s] answered: %d matches, %d facts, %d connections", reqID, result.Matches, result.Facts, result.Connections)
	c.JSON(http.StatusOK, gin.H{"answer": result.Answer})
}
