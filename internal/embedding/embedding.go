// Package embedding provides the text-embedding collaborator used for
// personality and culture similarity, plus the similarity math itself.
package embedding

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the embedding model used when none is configured
const DefaultModel = "text-embedding-004"

// DefaultTimeout bounds a single embedding call. The scoring pipeline
// must never hang on this collaborator.
const DefaultTimeout = 10 * time.Second

// Embedder turns free text into a fixed-length numeric vector.
// Implementations must respect context cancellation and return promptly.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Close() error
}

// GeminiEmbedder implements Embedder using the Gemini embedding API
type GeminiEmbedder struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiEmbedder creates an embedder backed by the Gemini API
func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{client: client, model: model, timeout: DefaultTimeout}, nil
}

// Embed returns the embedding vector for the given text
func (g *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("text is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	em := g.client.EmbeddingModel(g.model)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}
	return res.Embedding.Values, nil
}

// Close releases the underlying client
func (g *GeminiEmbedder) Close() error {
	return g.client.Close()
}
