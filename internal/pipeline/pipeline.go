// Package pipeline wires document loading, claim extraction, evidence
// gathering, and verification into one analysis flow.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/factforge/factforge/internal/cache"
	"github.com/factforge/factforge/internal/extract"
	"github.com/factforge/factforge/internal/llm"
	"github.com/factforge/factforge/internal/model"
	"github.com/factforge/factforge/internal/search"
	"github.com/factforge/factforge/internal/trust"
	"github.com/factforge/factforge/internal/verify"
	"github.com/factforge/factforge/internal/worker"
)

// ProgressFunc receives human-readable pipeline progress messages
type ProgressFunc func(msg string)

// Pipeline orchestrates the complete fact-check of one document
type Pipeline struct {
	source    *Source
	extractor *extract.Extractor
	verifier  *verify.Verifier
	renderer  *Renderer
	config    *model.Config
	progress  ProgressFunc
}

// NewPipeline assembles the pipeline from configuration. The model
// client is constructed once here and injected everywhere it is needed.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	client, err := llm.NewClient(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}

	scorer := trust.NewScorer(&cfg.Trust)

	var store cache.Cache
	if cfg.Cache.Enabled {
		store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	limiter := worker.NewLimiter(cfg.RateLimit.SearchPerSecond, cfg.RateLimit.SearchBurst)
	for domain, rps := range cfg.RateLimit.DomainRates {
		limiter.SetDomainRate(domain, rps, cfg.RateLimit.SearchBurst)
	}
	ddg := search.NewDuckDuckGoClient(&cfg.HTTP, limiter)
	orchestrator := search.NewOrchestrator(ddg, scorer, store, cfg.Search)

	adjudicator := verify.NewAdjudicator(client, scorer, cfg.LLM.MaxRetries)
	verifier := verify.NewVerifier(adjudicator, orchestrator, cfg.RateLimit.ClaimDelay)

	return &Pipeline{
		source:    NewSource(cfg.HTTP, limiter),
		extractor: extract.NewExtractor(client, extract.WithRetries(cfg.LLM.MaxRetries)),
		verifier:  verifier,
		renderer:  NewRenderer(cfg.Output.IncludeFooter),
		config:    cfg,
	}, nil
}

// SetProgress installs a progress callback for interactive runs
func (p *Pipeline) SetProgress(fn ProgressFunc) {
	p.progress = fn
}

// CheckDocument loads a document from a file path or URL and runs the
// full analysis. Implements worker.Checker for batch mode.
func (p *Pipeline) CheckDocument(ctx context.Context, source string) (*model.Report, error) {
	doc, err := p.source.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	return p.CheckText(ctx, doc.Text, doc.Subject, doc.Source)
}

// CheckText runs extraction and verification over already-loaded text
func (p *Pipeline) CheckText(ctx context.Context, text, subject, source string) (*model.Report, error) {
	start := time.Now()

	claims, err := p.extractor.Extract(ctx, text, extract.ProgressFunc(p.report))
	if err != nil {
		return nil, fmt.Errorf("extract claims: %w", err)
	}

	log.Info().
		Int("claims", len(claims)).
		Str("subject", subject).
		Msg("extraction complete")

	results := p.verifier.Verify(ctx, claims, verify.ProgressFunc(p.report))

	report := &model.Report{
		ID:        uuid.NewString(),
		Subject:   subject,
		Source:    source,
		CheckedAt: time.Now().UTC(),
		Claims:    len(results),
		Results:   results,
		Summary:   verify.Summarize(results),
	}

	log.Info().
		Str("id", report.ID).
		Int("claims", report.Claims).
		Dur("elapsed", time.Since(start)).
		Msg("analysis complete")

	return report, nil
}

// RenderReport writes the report to the requested outputs and prints the
// stdout summary.
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)

	return nil
}

func (p *Pipeline) report(msg string) {
	if p.progress != nil {
		p.progress(msg)
		return
	}
	log.Debug().Msg(strings.TrimSuffix(msg, "..."))
}
