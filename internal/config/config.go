// ABOUTME: Centralized configuration for the younger-self chat system
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration consumed by the indexing and chat core.
type Config struct {
	// Corpus and index locations
	DocsDir   string
	IndexPath string

	// OpenAI settings
	OpenAIKey       string
	ChatModel       string
	EmbeddingModel  string
	Temperature     float32
	MaxOutputTokens int
	Timeout         time.Duration
	MaxRetries      int
	RetryDelay      time.Duration

	// Chunking
	ChunkMaxLen    int
	ChunkOverlap   int
	EmbedBatchSize int
	EmbedWorkers   int

	// Retrieval and prompt assembly
	TopK                int
	SimilarityThreshold float64
	HistoryWindow       int
	PromptBudget        int // tokens; the assembler budgets 4 chars per token

	// Persona file location
	PersonaPath string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		DocsDir:             getEnv("YOUNGER_DOCS_DIR", "docs"),
		IndexPath:           getEnv("YOUNGER_INDEX_PATH", "storage/index.json"),
		OpenAIKey:           os.Getenv("OPENAI_API_KEY"),
		ChatModel:           getEnv("YOUNGER_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel:      getEnv("YOUNGER_EMBEDDING_MODEL", "text-embedding-3-small"),
		Temperature:         float32(getEnvFloat("YOUNGER_TEMPERATURE", 0.7)),
		MaxOutputTokens:     getEnvInt("YOUNGER_MAX_OUTPUT_TOKENS", 512),
		Timeout:             getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:          getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:          getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		ChunkMaxLen:         getEnvInt("YOUNGER_CHUNK_SIZE", 600),
		ChunkOverlap:        getEnvInt("YOUNGER_CHUNK_OVERLAP", 20),
		EmbedBatchSize:      getEnvInt("YOUNGER_EMBED_BATCH", 32),
		EmbedWorkers:        getEnvInt("YOUNGER_EMBED_WORKERS", 4),
		TopK:                getEnvInt("YOUNGER_TOP_K", 5),
		SimilarityThreshold: getEnvFloat("YOUNGER_SIMILARITY_THRESHOLD", 0.7),
		HistoryWindow:       getEnvInt("YOUNGER_HISTORY_WINDOW", 3),
		PromptBudget:        getEnvInt("YOUNGER_PROMPT_BUDGET", 4096),
		PersonaPath:         getEnv("YOUNGER_PERSONA_FILE", "younger.yaml"),
	}

	return cfg, cfg.Validate()
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.ChunkMaxLen <= 0 {
		return fmt.Errorf("YOUNGER_CHUNK_SIZE must be positive, got %d", c.ChunkMaxLen)
	}
	if c.ChunkOverlap < 0 {
		return fmt.Errorf("YOUNGER_CHUNK_OVERLAP must not be negative, got %d", c.ChunkOverlap)
	}
	if c.ChunkOverlap >= c.ChunkMaxLen {
		return fmt.Errorf("YOUNGER_CHUNK_OVERLAP (%d) must be smaller than YOUNGER_CHUNK_SIZE (%d)", c.ChunkOverlap, c.ChunkMaxLen)
	}
	if c.PromptBudget < c.ChunkMaxLen {
		return fmt.Errorf("YOUNGER_PROMPT_BUDGET (%d) must be at least YOUNGER_CHUNK_SIZE (%d)", c.PromptBudget, c.ChunkMaxLen)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("YOUNGER_TOP_K must be positive, got %d", c.TopK)
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("YOUNGER_SIMILARITY_THRESHOLD must be 0-1, got %f", c.SimilarityThreshold)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	return nil
}

// Helper functions

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
