package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/factforge/factforge/internal/pipeline"
	"github.com/factforge/factforge/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Fact-check multiple documents from a list file in parallel",
	Long: `Batch processes multiple documents concurrently:
- Read document sources from input file (one file path or URL per line)
- Check documents in parallel with configurable worker count
- Claims within each document still run sequentially to respect rate limits
- Generate individual reports for each document

Example:
  factforge batch documents.txt
  factforge batch documents.txt --concurrency 8 --output-dir ./reports
  factforge batch documents.txt --concurrency 2 --timeout 30m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./factforge-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "total timeout for batch processing")

	// Shared flags
	batchCmd.Flags().StringVar(&userAgent, "ua", "FactForge/0.2 (+https://github.com/factforge/factforge)", "HTTP User-Agent")
	batchCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable search cache (force fresh searches)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	batchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// LLM flags
	batchCmd.Flags().StringVar(&llmProvider, "provider", "openai", "LLM provider (openai, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  FactForge Batch Processing\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("initialize pipeline: %w", err)
	}

	processor := worker.NewBatchProcessor(p, concurrency)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Source, result.Error)
			continue
		}

		successCount++

		slug := sanitizeFilename(result.Report.Subject)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Source, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Report, mdPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write Markdown: %v\n", result.Source, err)
			continue
		}

		s := result.Report.Summary
		fmt.Fprintf(os.Stderr, "✓ %s (%d verified / %d inaccurate / %d false)\n",
			result.Report.Subject, s.Verified, s.Inaccurate, s.False)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Batch complete: %d total, %d succeeded, %d failed\n", len(results), successCount, failureCount)
	fmt.Fprintf(os.Stderr, "  Output: %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// sanitizeFilename turns a report subject into a safe file name
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
	)
	s = replacer.Replace(s)

	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "report"
	}

	return s
}
