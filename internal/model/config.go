package model

import "time"

// Config is the full application configuration
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Search      SearchConfig      `yaml:"search"`
	Trust       TrustConfig       `yaml:"trust"`
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// LLMConfig configures the language model client
type LLMConfig struct {
	Provider    string  `yaml:"provider"` // openai, ollama
	Model       string  `yaml:"model"`
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	Seed        int     `yaml:"seed"`    // Determinism seed passed to providers that honor it
	Timeout     int     `yaml:"timeout"` // Seconds per request
	MaxRetries  int     `yaml:"max_retries"`
	HTTPProxy   string  `yaml:"http_proxy"`
	HTTPSProxy  string  `yaml:"https_proxy"`
	NoProxy     string  `yaml:"no_proxy"`
}

// SearchConfig configures evidence gathering
type SearchConfig struct {
	MaxResultsPerQuery int `yaml:"max_results_per_query"`
	MaxQueryLength     int `yaml:"max_query_length"`
	MaxEvidence        int `yaml:"max_evidence"` // Pool size handed to the adjudicator
}

// TrustConfig extends the built-in source reputation lists
type TrustConfig struct {
	ExtraTrustedDomains []string `yaml:"extra_trusted_domains"`
	ExtraBlockedDomains []string `yaml:"extra_blocked_domains"`
}

// HTTPConfig configures outbound HTTP behavior
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy"`
}

// CacheConfig configures the search-response cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// RateLimitConfig bounds how hard external services are hit
type RateLimitConfig struct {
	SearchPerSecond float64            `yaml:"search_per_second"` // Per-domain search request rate
	SearchBurst     int                `yaml:"search_burst"`
	DomainRates     map[string]float64 `yaml:"domain_rates"` // Per-domain rate overrides
	ClaimDelay      time.Duration      `yaml:"claim_delay"`  // Pause between claims
}

// ConcurrencyConfig bounds batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"` // Documents processed in parallel in batch mode
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:    "openai",
			Model:       "gpt-4o-mini",
			Temperature: 0,
			MaxTokens:   2048,
			Seed:        42,
			Timeout:     30,
			MaxRetries:  3,
		},
		Search: SearchConfig{
			MaxResultsPerQuery: 5,
			MaxQueryLength:     200,
			MaxEvidence:        10,
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "FactForge/0.2 (+https://github.com/factforge/factforge)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   6 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			SearchPerSecond: 2,
			SearchBurst:     3,
			ClaimDelay:      500 * time.Millisecond,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
