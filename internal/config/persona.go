// ABOUTME: Persona file loading for the chat persona and example questions
// ABOUTME: YAML file with sensible defaults when no file exists
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/youngerself/younger/internal/models"
)

// DefaultInstruction is the persona directive used when the persona file
// does not provide one.
const DefaultInstruction = `You are this person speaking from their own memories and experiences.
Study the provided personal writings carefully to understand how they speak,
their vocabulary, tone, and the way they tell stories. Respond EXACTLY as
this person would, using their natural speaking patterns and mannerisms.
Sound like them, not like an AI describing them.`

// PersonaConfig is the on-disk persona file.
type PersonaConfig struct {
	Persona models.Persona `yaml:"persona"`
	Chatbot ChatbotConfig  `yaml:"chatbot"`
}

// ChatbotConfig holds presentation details for the chat front ends.
type ChatbotConfig struct {
	Title    string   `yaml:"title"`
	Examples []string `yaml:"examples"`
}

// DefaultPersonaConfig returns the configuration used when no persona file
// is present.
func DefaultPersonaConfig() *PersonaConfig {
	return &PersonaConfig{
		Persona: models.Persona{
			Name:        "Younger Self",
			Description: "A younger version of the user, grounded in their old writings.",
			Instruction: DefaultInstruction,
		},
		Chatbot: ChatbotConfig{
			Title: "Chat with your younger self",
			Examples: []string{
				"Tell me about yourself",
				"What are your interests?",
				"What did you think about back then?",
			},
		},
	}
}

// LoadPersona reads the persona file at path. A missing file yields the
// defaults rather than an error; a malformed file is an error.
func LoadPersona(path string) (*PersonaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultPersonaConfig(), nil
		}
		return nil, fmt.Errorf("reading persona file %s: %w", path, err)
	}

	cfg := DefaultPersonaConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing persona file %s: %w", path, err)
	}
	applyPersonaDefaults(cfg)
	return cfg, nil
}

func applyPersonaDefaults(cfg *PersonaConfig) {
	if cfg.Persona.Name == "" {
		cfg.Persona.Name = "Younger Self"
	}
	if cfg.Persona.Instruction == "" {
		cfg.Persona.Instruction = DefaultInstruction
	}
	if cfg.Chatbot.Title == "" {
		cfg.Chatbot.Title = "Chat with your younger self"
	}
}
