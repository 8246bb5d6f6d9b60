// ABOUTME: OpenAI client adapter for embeddings and persona-conditioned generation
// ABOUTME: Wraps go-openai with per-call timeouts and exponential-backoff retries
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/youngerself/younger/internal/util"
)

const (
	// DefaultChatModel is the default model for chat completions
	DefaultChatModel = "gpt-4o-mini"
	// DefaultEmbeddingModel is the default model for embeddings
	DefaultEmbeddingModel = openai.SmallEmbedding3
)

// ErrModelUnavailable is returned when the embedding backend cannot be
// reached or keeps failing after retries. Retryable by the caller.
var ErrModelUnavailable = errors.New("model backend unavailable")

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey          string
	ChatModel       string
	EmbeddingModel  string
	Temperature     float32
	MaxOutputTokens int
	Timeout         time.Duration
	MaxRetries      int
	RetryDelay      time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:          apiKey,
		ChatModel:       DefaultChatModel,
		EmbeddingModel:  string(DefaultEmbeddingModel),
		Temperature:     0.7,
		MaxOutputTokens: 512,
		Timeout:         30 * time.Second,
		MaxRetries:      3,
		RetryDelay:      time.Second * 2,
	}
}

// Client wraps the OpenAI API client with retry logic. It serves both as
// the Embedder for indexing/retrieval and the Generator for chat replies.
type Client struct {
	api             *openai.Client
	chatModel       string
	embeddingModel  openai.EmbeddingModel
	temperature     float32
	maxOutputTokens int
	timeout         time.Duration
	maxRetries      int
	retryDelay      time.Duration
}

// NewClient creates a new OpenAI client with the given configuration.
func NewClient(config *ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if config.ChatModel == "" {
		config.ChatModel = DefaultChatModel
	}
	if config.EmbeddingModel == "" {
		config.EmbeddingModel = string(DefaultEmbeddingModel)
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}

	return &Client{
		api:             openai.NewClient(config.APIKey),
		chatModel:       config.ChatModel,
		embeddingModel:  openai.EmbeddingModel(config.EmbeddingModel),
		temperature:     config.Temperature,
		maxOutputTokens: config.MaxOutputTokens,
		timeout:         config.Timeout,
		maxRetries:      config.MaxRetries,
		retryDelay:      config.RetryDelay,
	}, nil
}

// ModelTag returns the embedding model identifier. Indexes record this tag
// so a model switch is detected at load time instead of corrupting results.
func (c *Client) ModelTag() string {
	return string(c.embeddingModel)
}

// Embed generates an embedding vector for a single text.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	vectors, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch generates embedding vectors for a batch of texts, in input
// order. All vectors come from the same model so they share one dimension.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, ctx.Err())
			case <-time.After(util.CalculateBackoff(c.retryDelay, attempt)):
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.api.CreateEmbeddings(callCtx, openai.EmbeddingRequestStrings{
			Input: texts,
			Model: c.embeddingModel,
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if len(resp.Data) != len(texts) {
			lastErr = fmt.Errorf("attempt %d: got %d embeddings for %d inputs", attempt+1, len(resp.Data), len(texts))
			continue
		}

		// The API may return data out of order; place by index.
		vectors := make([][]float64, len(texts))
		for _, d := range resp.Data {
			if d.Index < 0 || d.Index >= len(vectors) {
				lastErr = fmt.Errorf("attempt %d: embedding index %d out of range", attempt+1, d.Index)
				vectors = nil
				break
			}
			v := make([]float64, len(d.Embedding))
			for i, f := range d.Embedding {
				v[i] = float64(f)
			}
			vectors[d.Index] = v
		}
		if vectors == nil {
			continue
		}

		return vectors, nil
	}

	return nil, fmt.Errorf("%w: embedding failed after %d attempts: %v", ErrModelUnavailable, c.maxRetries+1, lastErr)
}

// Complete submits an assembled prompt to the chat model and returns the
// reply text. The prompt already carries the persona block, retrieved
// context, and history, so it is sent as a single user message.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(util.CalculateBackoff(c.retryDelay, attempt)):
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.api.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
			Model: c.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: c.temperature,
			MaxTokens:   c.maxOutputTokens,
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}

		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("completion failed after %d attempts: %w", c.maxRetries+1, lastErr)
}
