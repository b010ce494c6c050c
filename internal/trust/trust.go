// Package trust classifies search result sources by domain reputation.
// The model cannot judge reliability from a snippet, so reputation is
// injected structurally before evidence ever reaches a prompt.
package trust

import (
	"sort"
	"strings"

	"github.com/factforge/factforge/internal/model"
)

// trustedDomains is the allow-list of authoritative sources: government,
// wire services and major newspapers, established fact-checkers,
// reference and academic sites, financial-data providers, science/tech
// press, and statistics aggregators.
var trustedDomains = []string{
	// Government and institutions
	".gov", ".edu", "who.int", "un.org", "europa.eu", "worldbank.org", "imf.org",
	// Wire services and major newspapers
	"reuters.com", "apnews.com", "bbc.com", "bbc.co.uk", "nytimes.com",
	"washingtonpost.com", "theguardian.com", "wsj.com", "ft.com", "economist.com",
	// Fact-checkers
	"snopes.com", "factcheck.org", "politifact.com", "fullfact.org",
	// Reference and academic
	"wikipedia.org", "britannica.com", "nature.com", "science.org",
	"sciencedirect.com", "nih.gov", "pubmed.ncbi.nlm.nih.gov", "jstor.org",
	// Financial data
	"bloomberg.com", "cnbc.com", "marketwatch.com", "finance.yahoo.com",
	"investor.gov", "sec.gov", "nasdaq.com", "morningstar.com",
	// Science and tech press
	"scientificamerican.com", "newscientist.com", "arstechnica.com",
	"technologyreview.com", "ieee.org",
	// Statistics aggregators
	"statista.com", "ourworldindata.org", "pewresearch.org", "gallup.com",
}

// blockedDomains is the deny-list: content farms, known misinformation
// outlets, low-quality aggregators, free blog hosting, and suspicious TLDs.
var blockedDomains = []string{
	"blogspot", "wordpress.com", "medium.com", "tumblr.com", "wixsite.com",
	"weebly.com", "substack.com",
	"answers.com", "ehow.com", "wikihow.com", "buzzfeed.com",
	"naturalnews.com", "infowars.com", "beforeitsnews.com", "worldtruth.tv",
	"yournewswire.com", "newspunch.com",
	".tk", ".ml", ".ga", ".cf", ".gq",
}

// topAuthorityMarkers earn a further bonus: the small set of sources the
// adjudication prompt should weight hardest.
var topAuthorityMarkers = []string{
	".gov", "reuters.com", "apnews.com", "wikipedia.org", "britannica.com",
	"snopes.com", "factcheck.org",
}

// Scorer scores and ranks search results by source reputation
type Scorer struct {
	trusted []string
	blocked []string
}

// NewScorer builds a scorer from the built-in lists plus any extensions
// from configuration.
func NewScorer(cfg *model.TrustConfig) *Scorer {
	s := &Scorer{
		trusted: trustedDomains,
		blocked: blockedDomains,
	}
	if cfg != nil {
		s.trusted = append(append([]string{}, trustedDomains...), cfg.ExtraTrustedDomains...)
		s.blocked = append(append([]string{}, blockedDomains...), cfg.ExtraBlockedDomains...)
	}
	return s
}

// IsTrusted reports whether the URL matches the allow-list
func (s *Scorer) IsTrusted(url string) bool {
	return matchesAny(strings.ToLower(url), s.trusted)
}

// IsBlocked reports whether the URL matches the deny-list
func (s *Scorer) IsBlocked(url string) bool {
	return matchesAny(strings.ToLower(url), s.blocked)
}

// Score rates a single result: base 50, +100 trusted, -200 blocked,
// +50 for a top-authority marker, +10 for a non-empty snippet.
func (s *Scorer) Score(result model.SearchResult) int {
	score := 50
	url := strings.ToLower(result.URL)

	if s.IsTrusted(url) {
		score += 100
	}
	if s.IsBlocked(url) {
		score -= 200
	}
	if matchesAny(url, topAuthorityMarkers) {
		score += 50
	}
	if strings.TrimSpace(result.Snippet) != "" {
		score += 10
	}

	return score
}

// FilterAndRank drops every blocked-source result outright and stable-sorts
// the remainder by score descending. A single block marker vetoes a result
// regardless of raw score; no blocked source ever reaches the adjudicator.
func (s *Scorer) FilterAndRank(results []model.SearchResult) []model.SearchResult {
	kept := make([]model.SearchResult, 0, len(results))
	for _, r := range results {
		if s.IsBlocked(strings.ToLower(r.URL)) {
			continue
		}
		kept = append(kept, r)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return s.Score(kept[i]) > s.Score(kept[j])
	})

	return kept
}

func matchesAny(url string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(url, m) {
			return true
		}
	}
	return false
}
