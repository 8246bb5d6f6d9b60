// ABOUTME: Tests for persona file loading
// ABOUTME: Missing file defaults, partial files, malformed YAML
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPersonaMissingFile(t *testing.T) {
	cfg, err := LoadPersona(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadPersona() on missing file error = %v, want defaults", err)
	}

	if cfg.Persona.Name != "Younger Self" {
		t.Errorf("Name = %q, want default", cfg.Persona.Name)
	}
	if cfg.Persona.Instruction != DefaultInstruction {
		t.Error("Instruction should be the default directive")
	}
	if cfg.Chatbot.Title != "Chat with your younger self" {
		t.Errorf("Title = %q, want default", cfg.Chatbot.Title)
	}
	if len(cfg.Chatbot.Examples) == 0 {
		t.Error("default persona should offer example questions")
	}
}

func TestLoadPersonaFullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "younger.yaml")
	content := `persona:
  name: "Teen Me"
  description: "Me at sixteen, all skateboards and mixtapes."
  instruction: "Answer like a sixteen year old would."
chatbot:
  title: "Talk to Teen Me"
  examples:
    - "What bands are you into?"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadPersona(path)
	if err != nil {
		t.Fatalf("LoadPersona() error = %v", err)
	}

	if cfg.Persona.Name != "Teen Me" {
		t.Errorf("Name = %q, want Teen Me", cfg.Persona.Name)
	}
	if !strings.Contains(cfg.Persona.Description, "skateboards") {
		t.Errorf("Description = %q, want the file's value", cfg.Persona.Description)
	}
	if cfg.Persona.Instruction != "Answer like a sixteen year old would." {
		t.Errorf("Instruction = %q, want the file's value", cfg.Persona.Instruction)
	}
	if cfg.Chatbot.Title != "Talk to Teen Me" {
		t.Errorf("Title = %q, want Talk to Teen Me", cfg.Chatbot.Title)
	}
	if len(cfg.Chatbot.Examples) != 1 {
		t.Errorf("Examples = %v, want the file's single example", cfg.Chatbot.Examples)
	}
}

func TestLoadPersonaPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "younger.yaml")
	content := `persona:
  name: "Teen Me"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadPersona(path)
	if err != nil {
		t.Fatalf("LoadPersona() error = %v", err)
	}

	if cfg.Persona.Name != "Teen Me" {
		t.Errorf("Name = %q, want Teen Me", cfg.Persona.Name)
	}
	if cfg.Persona.Instruction != DefaultInstruction {
		t.Error("missing instruction should fall back to the default")
	}
	if cfg.Chatbot.Title == "" {
		t.Error("missing title should fall back to the default")
	}
}

func TestLoadPersonaMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "younger.yaml")
	if err := os.WriteFile(path, []byte("persona: [not: valid"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadPersona(path); err == nil {
		t.Error("LoadPersona() on malformed YAML should fail")
	}
}
