package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/factforge/factforge/internal/util"
)

// OpenAIClient implements the Client interface for OpenAI models
type OpenAIClient struct {
	client *openai.Client
	config Config
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(config Config) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: util.NewProxyFunc(config.HTTPProxy, config.HTTPSProxy, config.NoProxy),
		},
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (c *OpenAIClient) Name() string {
	return "openai"
}

// Available checks if the provider is properly configured
func (c *OpenAIClient) Available(ctx context.Context) bool {
	_, err := c.client.ListModels(ctx)
	return err == nil
}

// Invoke sends one system+user prompt pair through the Chat Completions API
func (c *OpenAIClient) Invoke(ctx context.Context, system, user string) (string, error) {
	model := c.config.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	maxTokens := c.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 2048
	}

	seed := c.config.Seed
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: float32(c.config.Temperature),
		Seed:        &seed,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
