// Package embedding wraps a single OpenAI text-embedding call. It is a seam
// for future integration: nothing in the request path invokes it, and there
// is no retry, batching, or caching by design.
package embedding

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tmc/langchaingo/llms/openai"
)

// DefaultModel is the fixed embedding model identifier.
const DefaultModel = "text-embedding-3-small"

// ErrAPIKeyNotSet is returned before any network call when the credential is
// missing from both the argument and the environment.
var ErrAPIKeyNotSet = errors.New("OPENAI_API_KEY is not set")

// ErrNoEmbedding is returned when the provider call succeeds but yields no
// usable vector.
var ErrNoEmbedding = errors.New("failed to generate embedding")

type Client struct {
	llm   *openai.LLM
	model string
}

// New builds an embedding client. An empty apiKey falls back to the
// OPENAI_API_KEY environment variable; an empty model uses DefaultModel.
func New(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, ErrAPIKeyNotSet
	}
	if model == "" {
		model = DefaultModel
	}
	llm, err := openai.New(openai.WithToken(apiKey), openai.WithEmbeddingModel(model))
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	return &Client{llm: llm, model: model}, nil
}

// Model returns the configured embedding model identifier.
func (c *Client) Model() string { return c.model }

// EmbedText returns the embedding vector for one text input.
func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vecs, err := c.llm.CreateEmbedding(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}
	if len(vecs) == 0 || len(vecs[0]) == 0 {
		return nil, ErrNoEmbedding
	}
	return vecs[0], nil
}
