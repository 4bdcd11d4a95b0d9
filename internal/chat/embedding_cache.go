package chat

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math"

	"github.com/coocood/freecache"
)

// EmbeddingCache keeps query embeddings in a fixed size freecache, keyed by
// model and text.
type EmbeddingCache struct {
	cache         *freecache.Cache
	expireSeconds int
}

func NewEmbeddingCache(sizeMB int, expireSeconds int) *EmbeddingCache {
	if sizeMB <= 0 {
		sizeMB = 16
	}
	return &EmbeddingCache{
		cache:         freecache.NewCache(sizeMB * 1024 * 1024),
		expireSeconds: expireSeconds,
	}
}

func cacheKey(model, text string) []byte {
	sum := sha256.Sum256([]byte(model + "\x00" + text))
	return sum[:]
}

func (c *EmbeddingCache) Get(model, text string) ([]float64, bool) {
	raw, err := c.cache.Get(cacheKey(model, text))
	if err != nil || len(raw)%8 != 0 {
		return nil, false
	}

	embedding := make([]float64, len(raw)/8)
	for i := range embedding {
		embedding[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
	}
	return embedding, true
}

func (c *EmbeddingCache) Set(model, text string, embedding []float64) error {
	if len(embedding) == 0 {
		return errors.New("empty embedding")
	}

	raw := make([]byte, len(embedding)*8)
	for i, v := range embedding {
		binary.LittleEndian.PutUint64(raw[i*8:], math.Float64bits(v))
	}
	return c.cache.Set(cacheKey(model, text), raw, c.expireSeconds)
}

func (c *EmbeddingCache) HitRate() float64 {
	return c.cache.HitRate()
}
