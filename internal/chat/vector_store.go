package chat

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/philippgille/chromem-go"
)

var (
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
	ErrZeroEmbedding     = errors.New("zero embedding")
)

type ScoredChunk struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// VectorStore is an in-memory exact nearest neighbour index over text chunks,
// ranked by cosine similarity.
type VectorStore struct {
	collection *chromem.Collection

	mu        sync.Mutex
	dimension int
	nextID    int
}

func NewVectorStore() (*VectorStore, error) {
	collection, err := chromem.NewDB().CreateCollection("athlete-data", nil, noEmbeddingFunc)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	return &VectorStore{collection: collection}, nil
}

// chunks are embedded by the LLM client before they reach the store
func noEmbeddingFunc(_ context.Context, _ string) ([]float32, error) {
	return nil, errors.New("embeddings must be provided")
}

func toFloat32(v []float64) ([]float32, bool) {
	out := make([]float32, len(v))
	nonZero := false
	for i, x := range v {
		out[i] = float32(x)
		if out[i] != 0 {
			nonZero = true
		}
	}
	return out, nonZero
}

func (s *VectorStore) Add(ctx context.Context, text string, embedding []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(embedding) == 0 || (s.dimension != 0 && len(embedding) != s.dimension) {
		return ErrDimensionMismatch
	}
	vec, ok := toFloat32(embedding)
	if !ok {
		return ErrZeroEmbedding
	}

	err := s.collection.AddDocument(ctx, chromem.Document{
		ID:        strconv.Itoa(s.nextID),
		Content:   text,
		Embedding: vec,
	})
	if err != nil {
		return fmt.Errorf("add document: %w", err)
	}

	s.dimension = len(embedding)
	s.nextID++
	return nil
}

func (s *VectorStore) Len() int {
	return s.collection.Count()
}

// Search returns up to k chunks most similar to the query, best first.
func (s *VectorStore) Search(ctx context.Context, query []float64, k int) ([]ScoredChunk, error) {
	s.mu.Lock()
	dimension := s.dimension
	s.mu.Unlock()

	count := s.collection.Count()
	if count == 0 || k <= 0 {
		return nil, nil
	}
	if len(query) != dimension {
		return nil, ErrDimensionMismatch
	}
	vec, ok := toFloat32(query)
	if !ok {
		return nil, ErrZeroEmbedding
	}

	results, err := s.collection.QueryEmbedding(ctx, vec, min(k, count), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query collection: %w", err)
	}

	scored := make([]ScoredChunk, 0, len(results))
	for _, r := range results {
		scored = append(scored, ScoredChunk{Text: r.Content, Score: float64(r.Similarity)})
	}
	return scored, nil
}
