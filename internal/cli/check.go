package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/factforge/factforge/internal/model"
	"github.com/factforge/factforge/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noFooter    bool
	llmProvider string
	llmModel    string
	httpProxy   string
	httpsProxy  string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <file-or-url>",
	Short: "Fact-check a single document",
	Long: `Check analyzes one document to:
- Extract verifiable factual claims (figures, dates, named facts)
- Gather web evidence for each claim, ranked by source reputation
- Catch well-known myths instantly from a built-in table
- Adjudicate each claim: verified, inaccurate (with correction), or false
- Generate a report with per-claim explanations and sources

Example:
  factforge check annual-report.txt
  factforge check https://example.com/press-release --json report.json --md report.md
  factforge check notes.txt --provider ollama --model llama3.1`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Output flags
	checkCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	checkCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// HTTP flags
	checkCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "overall check timeout (documents with many claims take longer)")
	checkCmd.Flags().StringVar(&userAgent, "ua", "FactForge/0.2 (+https://github.com/factforge/factforge)", "HTTP User-Agent")
	checkCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable search cache (force fresh searches)")
	checkCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	checkCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	checkCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// LLM flags
	checkCmd.Flags().StringVar(&llmProvider, "provider", "openai", "LLM provider (openai, ollama)")
	checkCmd.Flags().StringVar(&llmModel, "model", "gpt-4o-mini", "LLM model name")
}

func runCheck(cmd *cobra.Command, args []string) error {
	source := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("initialize pipeline: %w", err)
	}

	if verbose {
		p.SetProgress(func(msg string) {
			fmt.Fprintf(os.Stderr, "⚙️  %s\n", msg)
		})
	}

	report, err := p.CheckDocument(ctx, source)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Examined %d claims\n", report.Claims)
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig merges flag values over defaults and resolves provider
// credentials from the environment.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = 30 * time.Second
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel
	cfg.LLM.HTTPProxy = httpProxy
	cfg.LLM.HTTPSProxy = httpsProxy

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}
