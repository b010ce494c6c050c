package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/factforge/factforge/internal/util"
)

// OllamaClient implements the Client interface for Ollama local models
type OllamaClient struct {
	baseURL    string
	httpClient *http.Client
	config     Config
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	System  string        `json:"system,omitempty"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"` // Max tokens
	Seed        int     `json:"seed,omitempty"`
}

type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type ollamaError struct {
	Error string `json:"error"`
}

// NewOllamaClient creates a new Ollama client
func NewOllamaClient(config Config) (*OllamaClient, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second // Local models can be slower
	}

	return &OllamaClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(config.HTTPProxy, config.HTTPSProxy, config.NoProxy),
			},
		},
		config: config,
	}, nil
}

// Name returns the provider name
func (c *OllamaClient) Name() string {
	return "ollama"
}

// Available checks if Ollama is running and reachable
func (c *OllamaClient) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode == http.StatusOK
}

// Invoke sends one system+user prompt pair through the generate API
func (c *OllamaClient) Invoke(ctx context.Context, system, user string) (string, error) {
	model := c.config.Model
	if model == "" {
		model = "llama3"
	}

	body, err := json.Marshal(ollamaRequest{
		Model:  model,
		Prompt: user,
		System: system,
		Stream: false,
		Options: ollamaOptions{
			Temperature: c.config.Temperature,
			NumPredict:  c.config.MaxTokens,
			Seed:        c.config.Seed,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr ollamaError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("ollama error: %s", apiErr.Error)
		}
		return "", fmt.Errorf("ollama status %d", resp.StatusCode)
	}

	var result ollamaResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	return strings.TrimSpace(result.Response), nil
}
