package chat

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/2beens/sportai/internal/telemetry/metrics"
	"github.com/2beens/sportai/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=chat_test

var ErrEmptyQuery = errors.New("empty query")

type llmClient interface {
	EmbeddingModel() string
	EmbedDocuments(ctx context.Context, texts []string) ([][]float64, error)
	EmbedQuery(ctx context.Context, text string) ([]float64, error)
	Generate(ctx context.Context, systemPrompt string, turns []Turn) (string, error)
}

type sessionStore interface {
	Create(ctx context.Context, userID int) (*Session, error)
	Get(ctx context.Context, userID int, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Reset(ctx context.Context, session *Session) error
}

type ServiceOptions struct {
	ChunkSize    int
	ChunkOverlap int
	TopK         int
}

type Answer struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

type Service struct {
	llm            llmClient
	sessions       sessionStore
	cache          *EmbeddingCache
	store          *VectorStore
	opts           ServiceOptions
	metricsManager *metrics.Manager
}

func NewService(
	llm llmClient,
	sessions sessionStore,
	cache *EmbeddingCache,
	opts ServiceOptions,
	metricsManager *metrics.Manager,
) (*Service, error) {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 1000
	}
	if opts.ChunkOverlap < 0 || opts.ChunkOverlap >= opts.ChunkSize {
		opts.ChunkOverlap = 0
	}
	if opts.TopK <= 0 {
		opts.TopK = 4
	}
	store, err := NewVectorStore()
	if err != nil {
		return nil, err
	}
	return &Service{
		llm:            llm,
		sessions:       sessions,
		cache:          cache,
		store:          store,
		opts:           opts,
		metricsManager: metricsManager,
	}, nil
}

// LoadAthleteData indexes the contents of the athlete data file.
func (s *Service) LoadAthleteData(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read athlete data %s: %w", path, err)
	}
	return s.Index(ctx, string(data))
}

// Index splits the text into chunks, embeds and stores them. Returns the
// number of indexed chunks.
func (s *Service) Index(ctx context.Context, text string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "chat.index")
	defer tracing.EndSpanWithErrCheck(span, &err)

	chunks, err := SplitText(text, "\n", s.opts.ChunkSize, s.opts.ChunkOverlap)
	if err != nil {
		return 0, err
	}
	if len(chunks) == 0 {
		return 0, nil
	}

	embeddings, err := s.llm.EmbedDocuments(ctx, chunks)
	if err != nil {
		return 0, fmt.Errorf("embed %d chunks: %w", len(chunks), err)
	}
	if len(embeddings) != len(chunks) {
		return 0, fmt.Errorf("got %d embeddings for %d chunks", len(embeddings), len(chunks))
	}

	for i, chunk := range chunks {
		if err := s.store.Add(ctx, chunk, embeddings[i]); err != nil {
			return i, fmt.Errorf("store chunk %d: %w", i, err)
		}
	}

	span.SetAttributes(attribute.Int("chunks", len(chunks)))
	log.Debugf("chat: indexed %d chunks", len(chunks))
	return len(chunks), nil
}

func (s *Service) IndexedChunks() int {
	return s.store.Len()
}

func (s *Service) embedQuery(ctx context.Context, query string) ([]float64, error) {
	model := s.llm.EmbeddingModel()
	if s.cache != nil {
		if embedding, ok := s.cache.Get(model, query); ok {
			return embedding, nil
		}
	}

	embedding, err := s.llm.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(model, query, embedding); err != nil {
			log.Warnf("chat: cache query embedding: %s", err)
		}
	}
	return embedding, nil
}

func (s *Service) countQuery(outcome string) {
	if s.metricsManager != nil {
		s.metricsManager.CounterChatQueries.WithLabelValues(outcome).Inc()
	}
}

// Ask answers the query within the given session, creating a new session
// when sessionID is empty. If the LLM call fails, the session history is
// cleared and the error returned.
func (s *Service) Ask(ctx context.Context, userID int, sessionID, query string) (_ *Answer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "chat.ask")
	defer tracing.EndSpanWithErrCheck(span, &err)

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	var session *Session
	if sessionID == "" {
		session, err = s.sessions.Create(ctx, userID)
	} else {
		session, err = s.sessions.Get(ctx, userID, sessionID)
	}
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("session.id", session.ID))

	queryEmbedding, err := s.embedQuery(ctx, query)
	if err != nil {
		s.countQuery("error")
		return nil, fmt.Errorf("embed query: %w", err)
	}

	retrieved, err := s.store.Search(ctx, queryEmbedding, s.opts.TopK)
	if err != nil {
		s.countQuery("error")
		return nil, fmt.Errorf("search context: %w", err)
	}

	turns := make([]Turn, 0, len(session.Turns)+1)
	turns = append(turns, session.Turns...)
	turns = append(turns, Turn{Role: roleUser, Text: stuffPrompt(retrieved, query)})

	response, err := s.llm.Generate(ctx, coachSystemPrompt, turns)
	if err != nil {
		s.countQuery("error")
		if resetErr := s.sessions.Reset(ctx, session); resetErr != nil {
			log.Errorf("chat: reset session %s after failed query: %s", session.ID, resetErr)
		}
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	session.Turns = append(session.Turns,
		Turn{Role: roleUser, Text: query},
		Turn{Role: roleModel, Text: response},
	)
	session.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, session); err != nil {
		s.countQuery("error")
		return nil, err
	}

	s.countQuery("ok")
	return &Answer{Response: response, SessionID: session.ID}, nil
}

func (s *Service) History(ctx context.Context, userID int, sessionID string) ([]Turn, error) {
	session, err := s.sessions.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Turns, nil
}

func (s *Service) Reset(ctx context.Context, userID int, sessionID string) error {
	session, err := s.sessions.Get(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	return s.sessions.Reset(ctx, session)
}
