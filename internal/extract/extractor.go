// Package extract turns raw document text into a clean, typed,
// deduplicated claim list ready for verification.
package extract

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/factforge/factforge/internal/llm"
	"github.com/factforge/factforge/internal/model"
	"github.com/factforge/factforge/internal/parse"
)

// ProgressFunc receives human-readable extraction progress messages
type ProgressFunc func(msg string)

// Extractor extracts verifiable claims from document text
type Extractor struct {
	client    llm.Client
	chunkSize int
	retries   int
	prePass   bool
}

// Option configures an Extractor
type Option func(*Extractor)

// WithChunkSize overrides the per-chunk character budget
func WithChunkSize(n int) Option {
	return func(e *Extractor) { e.chunkSize = n }
}

// WithRetries overrides the per-chunk model retry count
func WithRetries(n int) Option {
	return func(e *Extractor) { e.retries = n }
}

// WithoutPrePass disables the regex pre-pass
func WithoutPrePass() Option {
	return func(e *Extractor) { e.prePass = false }
}

// NewExtractor creates an extractor backed by the given model client
func NewExtractor(client llm.Client, opts ...Option) *Extractor {
	e := &Extractor{
		client:    client,
		chunkSize: defaultChunkSize,
		retries:   3,
		prePass:   true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the ordered claim list for a document. One bad chunk
// contributes zero claims and processing continues; partial extraction is
// acceptable. The only hard failure is a nil client, which is a setup
// error the caller should have surfaced before any work began.
func (e *Extractor) Extract(ctx context.Context, text string, progress ProgressFunc) ([]model.Claim, error) {
	if e.client == nil {
		return nil, fmt.Errorf("no model client configured")
	}
	if progress == nil {
		progress = func(string) {}
	}

	var all []model.Claim

	if e.prePass {
		progress("Pre-scanning for numerical claims...")
		all = append(all, PrePassClaims(text)...)
	}

	chunks := ChunkText(text, e.chunkSize)
	for i, chunk := range chunks {
		progress(fmt.Sprintf("Analyzing section %d/%d...", i+1, len(chunks)))

		claims, err := e.extractFromChunk(ctx, chunk)
		if err != nil {
			log.Warn().Err(err).Int("chunk", i+1).Msg("chunk extraction failed, continuing")
			continue
		}
		all = append(all, claims...)
	}

	for i := range all {
		categorize(&all[i])
	}

	unique := Deduplicate(all)

	// Stable: ties keep their prior relative order, so the types most prone
	// to staleness surface first without reshuffling within a type.
	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Type.Priority() < unique[j].Type.Priority()
	})

	return unique, nil
}

func (e *Extractor) extractFromChunk(ctx context.Context, chunk string) ([]model.Claim, error) {
	user := fmt.Sprintf(claimExtractionUserPrompt, chunk)

	response, err := llm.WithRetry(ctx, e.client, e.retries, claimExtractionSystemPrompt, user)
	if err != nil {
		return nil, fmt.Errorf("model invocation: %w", err)
	}

	claims, ok := parse.ClaimList(response)
	if !ok {
		return nil, fmt.Errorf("no parsable claims in response")
	}

	return claims, nil
}

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// categorize backfills type, search query, and verification focus on
// claims the model (or the pre-pass) left incomplete.
func categorize(claim *model.Claim) {
	lower := strings.ToLower(claim.Text)

	if claim.Type == "" || !model.KnownType(claim.Type) {
		switch {
		case containsAnyWord(lower, "$", "billion", "million", "revenue", "profit", "stock", "market cap", "valuation"):
			claim.Type = model.ClaimTypeFinancial
		case containsAnyWord(lower, "%", "percent", "ratio", "rate"):
			claim.Type = model.ClaimTypeStatistic
		case yearRe.MatchString(lower):
			claim.Type = model.ClaimTypeDate
		case containsAnyWord(lower, "founded", "established", "started", "launched"):
			claim.Type = model.ClaimTypeHistorical
		default:
			claim.Type = model.ClaimTypeGeneral
		}
	}

	if claim.SearchQuery == "" {
		query := claim.Text
		if len(query) > 100 {
			query = query[:100]
		}
		claim.SearchQuery = query
	}

	if claim.VerificationFocus == "" {
		claim.VerificationFocus = fmt.Sprintf("Verify all facts in this %s claim", claim.Type)
	}
}

func containsAnyWord(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
