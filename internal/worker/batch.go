package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/factforge/factforge/internal/model"
)

// Checker runs the full analysis for one document source (a file path or
// a URL) and returns its report.
type Checker interface {
	CheckDocument(ctx context.Context, source string) (*model.Report, error)
}

// CheckJob is one document analysis submitted to the pool
type CheckJob struct {
	Source  string
	Checker Checker
}

// Execute runs the check job
func (j *CheckJob) Execute(ctx context.Context) Result {
	report, err := j.Checker.CheckDocument(ctx, j.Source)
	if err != nil {
		return &CheckResult{
			Source: j.Source,
			Error:  err,
		}
	}
	return &CheckResult{
		Source: j.Source,
		Report: report,
	}
}

// CheckResult is the outcome of one document analysis
type CheckResult struct {
	Source string
	Report *model.Report
	Error  error
}

// GetError returns the error from the check result
func (r *CheckResult) GetError() error {
	return r.Error
}

// BatchProcessor fact-checks multiple documents concurrently. Claims
// within each document still run sequentially; only documents fan out.
type BatchProcessor struct {
	checker     Checker
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(checker Checker, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		checker:     checker,
		concurrency: concurrency,
	}
}

// ProcessDocuments checks multiple document sources concurrently
func (b *BatchProcessor) ProcessDocuments(ctx context.Context, sources []string) []*CheckResult {
	if len(sources) == 0 {
		return []*CheckResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, source := range sources {
		pool.Submit(&CheckJob{
			Source:  source,
			Checker: b.checker,
		})
	}

	results := pool.Wait()

	checkResults := make([]*CheckResult, len(results))
	for i, result := range results {
		checkResults[i] = result.(*CheckResult)
	}

	return checkResults
}

// ProcessFile reads document sources from a list file and checks them
// concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*CheckResult, error) {
	sources, err := ReadSourcesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}

	return b.ProcessDocuments(ctx, sources), nil
}

// ReadSourcesFromFile reads document sources from a file, one per line.
// Blank lines and # comments are skipped and duplicates are dropped.
func ReadSourcesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var sources []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			sources = append(sources, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return sources, nil
}
