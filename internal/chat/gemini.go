package chat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/sportai/internal/telemetry/metrics"
	"github.com/2beens/sportai/internal/telemetry/tracing"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
	"google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"
)

const (
	roleUser  = "user"
	roleModel = "model"

	// batchEmbedLimit is the max number of texts the API embeds in one call
	batchEmbedLimit = 100
)

var ErrEmptyResponse = errors.New("llm returned an empty response")

type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type GeminiConfig struct {
	APIKey            string
	GenerationModel   string
	EmbeddingModel    string
	RequestsPerMinute int
	// Endpoint overrides the API base URL, used in tests
	Endpoint string
}

// apiKeyTransport adds the api key header to every outgoing request.
type apiKeyTransport struct {
	apiKey string
	next   http.RoundTripper
}

func (t apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("x-goog-api-key", t.apiKey)
	return t.next.RoundTrip(req)
}

// GeminiClient embeds texts and generates answers using the Gemini API.
type GeminiClient struct {
	svc             *generativelanguage.Service
	generationModel string
	embeddingModel  string
	limiter         *rate.Limiter
	metricsManager  *metrics.Manager
}

func NewGeminiClient(ctx context.Context, cfg GeminiConfig, metricsManager *metrics.Manager) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key not set")
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 30
	}

	httpClient := &http.Client{
		Transport: apiKeyTransport{
			apiKey: cfg.APIKey,
			next:   otelhttp.NewTransport(http.DefaultTransport),
		},
		Timeout: time.Minute,
	}

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := generativelanguage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create generative language service: %w", err)
	}

	return &GeminiClient{
		svc:             svc,
		generationModel: modelPath(cfg.GenerationModel),
		embeddingModel:  modelPath(cfg.EmbeddingModel),
		limiter:         rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1),
		metricsManager:  metricsManager,
	}, nil
}

func modelPath(model string) string {
	if strings.HasPrefix(model, "models/") {
		return model
	}
	return "models/" + model
}

func (c *GeminiClient) EmbeddingModel() string {
	return c.embeddingModel
}

func (c *GeminiClient) observe(start time.Time) {
	if c.metricsManager != nil {
		c.metricsManager.HistogramLLMDuration.Observe(time.Since(start).Seconds())
	}
}

// EmbedDocuments embeds the given texts for retrieval, in batches.
func (c *GeminiClient) EmbedDocuments(ctx context.Context, texts []string) (_ [][]float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gemini.embedDocuments")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("texts", len(texts)))

	embeddings := make([][]float64, 0, len(texts))
	for start := 0; start < len(texts); start += batchEmbedLimit {
		end := min(start+batchEmbedLimit, len(texts))

		req := &generativelanguage.BatchEmbedContentsRequest{}
		for _, text := range texts[start:end] {
			req.Requests = append(req.Requests, &generativelanguage.EmbedContentRequest{
				Model:    c.embeddingModel,
				Content:  textContent("", text),
				TaskType: "RETRIEVAL_DOCUMENT",
			})
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		callStart := time.Now()
		resp, err := c.svc.Models.BatchEmbedContents(c.embeddingModel, req).Context(ctx).Do()
		c.observe(callStart)
		if err != nil {
			return nil, fmt.Errorf("batch embed contents: %w", err)
		}
		if len(resp.Embeddings) != end-start {
			return nil, fmt.Errorf("batch embed contents: got %d embeddings for %d texts", len(resp.Embeddings), end-start)
		}
		for _, e := range resp.Embeddings {
			embeddings = append(embeddings, e.Values)
		}
	}

	return embeddings, nil
}

func (c *GeminiClient) EmbedQuery(ctx context.Context, text string) (_ []float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gemini.embedQuery")
	defer tracing.EndSpanWithErrCheck(span, &err)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.svc.Models.EmbedContent(c.embeddingModel, &generativelanguage.EmbedContentRequest{
		Model:    c.embeddingModel,
		Content:  textContent("", text),
		TaskType: "RETRIEVAL_QUERY",
	}).Context(ctx).Do()
	c.observe(start)
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, ErrEmptyResponse
	}

	return resp.Embedding.Values, nil
}

// Generate sends the conversation to the generation model and returns the
// text of the first candidate.
func (c *GeminiClient) Generate(ctx context.Context, systemPrompt string, turns []Turn) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gemini.generate")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("turns", len(turns)))

	req := &generativelanguage.GenerateContentRequest{}
	if systemPrompt != "" {
		req.SystemInstruction = textContent("", systemPrompt)
	}
	for _, t := range turns {
		req.Contents = append(req.Contents, textContent(t.Role, t.Text))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	start := time.Now()
	resp, err := c.svc.Models.GenerateContent(c.generationModel, req).Context(ctx).Do()
	c.observe(start)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range candidate.Content.Parts {
			sb.WriteString(part.Text)
		}
		if answer := strings.TrimSpace(sb.String()); answer != "" {
			return answer, nil
		}
	}

	return "", ErrEmptyResponse
}

func textContent(role, text string) *generativelanguage.Content {
	return &generativelanguage.Content{
		Role:  role,
		Parts: []*generativelanguage.Part{{Text: text}},
	}
}
