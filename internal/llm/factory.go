package llm

import (
	"fmt"
	"strings"
)

// NewClient creates a client based on configuration. A missing credential
// here is a setup error: it aborts the whole pipeline before any work.
func NewClient(config Config) (Client, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIClient(config)

	case "ollama":
		return NewOllamaClient(config)

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", config.Provider)
	}
}
