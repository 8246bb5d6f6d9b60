// ABOUTME: Tests for the OpenAI client wrapper
// ABOUTME: Configuration defaults and construction; no live API calls
package llm

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("test-key")

	if cfg.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want test-key", cfg.APIKey)
	}
	if cfg.ChatModel != DefaultChatModel {
		t.Errorf("ChatModel = %q, want %q", cfg.ChatModel, DefaultChatModel)
	}
	if cfg.EmbeddingModel != string(DefaultEmbeddingModel) {
		t.Errorf("EmbeddingModel = %q, want %q", cfg.EmbeddingModel, string(DefaultEmbeddingModel))
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(&ClientConfig{})
	if err == nil {
		t.Fatal("NewClient() without an API key should fail")
	}
	if !strings.Contains(err.Error(), "API key") {
		t.Errorf("error = %v, want mention of the API key", err)
	}
}

func TestNewClientFillsDefaults(t *testing.T) {
	client, err := NewClient(&ClientConfig{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.chatModel != DefaultChatModel {
		t.Errorf("chatModel = %q, want %q", client.chatModel, DefaultChatModel)
	}
	if client.ModelTag() != string(DefaultEmbeddingModel) {
		t.Errorf("ModelTag() = %q, want %q", client.ModelTag(), string(DefaultEmbeddingModel))
	}
	if client.timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", client.timeout)
	}
}

func TestModelTagFollowsConfig(t *testing.T) {
	client, err := NewClient(&ClientConfig{
		APIKey:         "test-key",
		EmbeddingModel: "text-embedding-ada-002",
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.ModelTag() != "text-embedding-ada-002" {
		t.Errorf("ModelTag() = %q, want the configured model", client.ModelTag())
	}
}
