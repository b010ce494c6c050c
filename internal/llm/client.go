// Package llm provides a pluggable interface for language model providers.
package llm

import (
	"context"

	"github.com/factforge/factforge/internal/model"
)

// Client is the capability the pipeline depends on: a fixed system
// instruction plus one user prompt in, free-form text out. Constructed
// once at startup and injected; no component builds its own client.
type Client interface {
	// Name returns the provider name
	Name() string

	// Invoke sends a system instruction and user prompt, returning the raw
	// model response text.
	Invoke(ctx context.Context, system, user string) (string, error)

	// Available checks whether the provider is configured and reachable
	Available(ctx context.Context) bool
}

// Config holds provider configuration
type Config struct {
	// Provider name: "openai" or "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for hosted providers
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama, OpenAI-compatible proxies)
	BaseURL string

	// Temperature; verification wants 0 for determinism
	Temperature float64

	// MaxTokens bounds the response length
	MaxTokens int

	// Seed for providers that support deterministic sampling
	Seed int

	// Timeout for API requests, in seconds
	Timeout int

	// MaxRetries bounds transient-error retries
	MaxRetries int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:    "openai",
		Model:       "gpt-4o-mini",
		Temperature: 0,
		MaxTokens:   2048,
		Seed:        42,
		Timeout:     30,
		MaxRetries:  3,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:    mc.Provider,
		Model:       mc.Model,
		APIKey:      mc.APIKey,
		BaseURL:     mc.BaseURL,
		Temperature: mc.Temperature,
		MaxTokens:   mc.MaxTokens,
		Seed:        mc.Seed,
		Timeout:     mc.Timeout,
		MaxRetries:  mc.MaxRetries,
		HTTPProxy:   mc.HTTPProxy,
		HTTPSProxy:  mc.HTTPSProxy,
		NoProxy:     mc.NoProxy,
	}
}
