// ABOUTME: Persona describes the voice the generative model is instructed to adopt
// ABOUTME: Loaded from the persona config file and rendered into every prompt
package models

// Persona is the configured character for the chat session. Instruction is
// the full persona directive; Name and Description give the model identity
// context. The rendered persona block is never truncated.
type Persona struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Instruction string `yaml:"instruction" json:"instruction"`
}
