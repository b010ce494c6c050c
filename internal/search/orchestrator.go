package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/factforge/factforge/internal/cache"
	"github.com/factforge/factforge/internal/model"
	"github.com/factforge/factforge/internal/trust"
)

// factCheckSites scopes a query to established fact-checking domains
const factCheckSites = "site:snopes.com OR site:factcheck.org OR site:politifact.com OR site:reuters.com/fact-check"

// Orchestrator composes search queries per claim and returns pooled,
// trust-ranked, URL-deduplicated evidence. Every failure is soft: a claim
// with no reachable search engine simply gets zero evidence.
type Orchestrator struct {
	client      Client
	scorer      *trust.Scorer
	cache       cache.Cache // nil disables caching
	maxResults  int
	maxQueryLen int
	maxEvidence int
	cacheTTL    time.Duration
}

// NewOrchestrator wires a search client to the trust scorer. The cache
// may be nil.
func NewOrchestrator(client Client, scorer *trust.Scorer, store cache.Cache, cfg model.SearchConfig) *Orchestrator {
	maxResults := cfg.MaxResultsPerQuery
	if maxResults <= 0 {
		maxResults = 5
	}
	maxQueryLen := cfg.MaxQueryLength
	if maxQueryLen <= 0 {
		maxQueryLen = 200
	}
	maxEvidence := cfg.MaxEvidence
	if maxEvidence <= 0 {
		maxEvidence = 10
	}

	return &Orchestrator{
		client:      client,
		scorer:      scorer,
		cache:       store,
		maxResults:  maxResults,
		maxQueryLen: maxQueryLen,
		maxEvidence: maxEvidence,
		cacheTTL:    time.Hour,
	}
}

// Search issues one engine query, trust-ranks the hits, and returns the
// top maxResults. Errors never propagate; they yield an empty list.
func (o *Orchestrator) Search(ctx context.Context, query string, maxResults int) []model.SearchResult {
	query = strings.TrimSpace(query)
	if len(query) > o.maxQueryLen {
		query = query[:o.maxQueryLen]
	}
	if query == "" || o.client == nil {
		return nil
	}
	if maxResults <= 0 {
		maxResults = o.maxResults
	}

	if hits, ok := o.cached(query); ok {
		return o.rank(hits, maxResults)
	}

	hits, err := o.client.Search(ctx, query, maxResults*2)
	if err != nil {
		log.Debug().Err(err).Str("query", query).Msg("search failed, returning no evidence")
		return nil
	}

	o.store(query, hits)

	return o.rank(hits, maxResults)
}

func (o *Orchestrator) rank(hits []model.SearchResult, maxResults int) []model.SearchResult {
	ranked := o.scorer.FilterAndRank(hits)
	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked
}

// GatherEvidence runs the full per-claim strategy stack: the claim's own
// optimized query, a fact-check-site-scoped query, financial-data queries
// when applicable, then keyword and raw-prefix fallbacks while results
// stay sparse. All hits are pooled and deduplicated by URL.
func (o *Orchestrator) GatherEvidence(ctx context.Context, claim model.Claim) []model.SearchResult {
	var pooled []model.SearchResult

	primary := claim.SearchQuery
	if primary == "" {
		primary = prefix(claim.Text, 100)
	}
	pooled = append(pooled, o.Search(ctx, primary, o.maxResults)...)

	pooled = append(pooled, o.Search(ctx, claim.Text+" "+factCheckSites, o.maxResults)...)

	if isFinancial(claim) {
		pooled = append(pooled, o.searchFinancial(ctx, claim)...)
	}

	if len(pooled) < 3 {
		if q := keywordQuery(claim.Text); q != "" {
			pooled = append(pooled, o.Search(ctx, q, o.maxResults)...)
		}
	}

	// Last resort: the raw claim text itself, when even the keyword
	// query left results sparse.
	if len(pooled) < 2 {
		pooled = append(pooled, o.Search(ctx, prefix(claim.Text, 100), o.maxResults)...)
	}

	unique := DedupeByURL(pooled)
	if len(unique) > o.maxEvidence {
		unique = unique[:o.maxEvidence]
	}

	return unique
}

// searchFinancial issues recency-hinted market-data queries for the
// entities the claim mentions.
func (o *Orchestrator) searchFinancial(ctx context.Context, claim model.Claim) []model.SearchResult {
	entities := claim.Entities
	if len(entities) > 3 {
		entities = entities[:3]
	}

	year := time.Now().Year()

	var results []model.SearchResult
	for _, entity := range entities {
		queries := []string{
			fmt.Sprintf("%s stock price %d", entity, year),
			fmt.Sprintf("%s market cap current", entity),
			fmt.Sprintf("%s revenue latest", entity),
		}
		for _, q := range queries {
			results = append(results, o.Search(ctx, q, 3)...)
		}
	}
	return results
}

func isFinancial(claim model.Claim) bool {
	return claim.Type == model.ClaimTypeFinancial || model.HasFinancialMarkers(claim.Text)
}

var (
	numberRe     = regexp.MustCompile(`\d+(?:\.\d+)?%?`)
	properNounRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
)

// keywordQuery builds a focused query from proper nouns and numbers when
// the claim's own query found too little.
func keywordQuery(text string) string {
	nouns := properNounRe.FindAllString(text, -1)
	if len(nouns) > 3 {
		nouns = nouns[:3]
	}
	numbers := numberRe.FindAllString(text, -1)
	if len(numbers) > 2 {
		numbers = numbers[:2]
	}

	terms := append(nouns, numbers...)
	return strings.Join(terms, " ")
}

// DedupeByURL keeps the first hit per distinct URL. Hits with empty URLs
// are all kept; they never deduplicate against each other.
func DedupeByURL(results []model.SearchResult) []model.SearchResult {
	seen := make(map[string]bool)
	unique := make([]model.SearchResult, 0, len(results))

	for _, r := range results {
		if r.URL == "" {
			unique = append(unique, r)
			continue
		}
		if seen[r.URL] {
			continue
		}
		seen[r.URL] = true
		unique = append(unique, r)
	}

	return unique
}

func prefix(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func (o *Orchestrator) cached(query string) ([]model.SearchResult, bool) {
	if o.cache == nil {
		return nil, false
	}
	data, found := o.cache.Get(cache.Key(query))
	if !found {
		return nil, false
	}
	var hits []model.SearchResult
	if err := json.Unmarshal(data, &hits); err != nil {
		return nil, false
	}
	return hits, true
}

func (o *Orchestrator) store(query string, hits []model.SearchResult) {
	if o.cache == nil || len(hits) == 0 {
		return
	}
	data, err := json.Marshal(hits)
	if err != nil {
		return
	}
	if err := o.cache.Set(cache.Key(query), data, o.cacheTTL); err != nil {
		log.Debug().Err(err).Msg("cache write failed")
	}
}

// readLimited reads at most maxBytes from r
func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}
