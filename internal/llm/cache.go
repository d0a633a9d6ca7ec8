package llm

import (
	"container/list"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Fingerprint returns the cache key for a piece of text. Purely a
// function of the input; collisions are accepted, not mitigated.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

type cacheEntry struct {
	key    string
	vector []float32
}

// EmbeddingCache is a capacity-bounded cache of text fingerprints to
// embedding vectors with least-recently-used eviction. A capacity of
// zero or less disables eviction.
type EmbeddingCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	entries  map[string]*list.Element
}

func NewEmbeddingCache(capacity int) *EmbeddingCache {
	return &EmbeddingCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
	}
}

func (c *EmbeddingCache) Get(key string) ([]float32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).vector, true
}

func (c *EmbeddingCache) Put(key string, vector []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry).vector = vector
		c.order.MoveToFront(el)
		return
	}
	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, vector: vector})

	if c.capacity > 0 && c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
}

func (c *EmbeddingCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// CachingEmbedder memoizes an EmbedderClient. Failed calls are never
// cached, so a transient provider outage does not poison the cache.
type CachingEmbedder struct {
	inner EmbedderClient
	cache *EmbeddingCache
}

func NewCachingEmbedder(inner EmbedderClient, cache *EmbeddingCache) *CachingEmbedder {
	return &CachingEmbedder{inner: inner, cache: cache}
}

func (e *CachingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	key := Fingerprint(text)
	if vec, ok := e.cache.Get(key); ok {
		return vec, nil
	}

	vec, err := e.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	e.cache.Put(key, vec)
	return vec, nil
}

// Size reports how many embeddings are currently cached.
func (e *CachingEmbedder) Size() int {
	return e.cache.Len()
}
