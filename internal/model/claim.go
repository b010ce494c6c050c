package model

import "strings"

// Claim represents a verifiable factual statement extracted from a document
type Claim struct {
	Text              string    `json:"claim"`                        // The claim text exactly as stated
	Type              ClaimType `json:"claim_type"`                   // Category driving prompt and search strategy
	Entities          []string  `json:"entities,omitempty"`           // Named entities mentioned (companies, people, products)
	SearchQuery       string    `json:"search_query,omitempty"`       // Query optimized for evidence retrieval
	VerificationFocus string    `json:"verification_focus,omitempty"` // What specifically must be checked
	Heuristic         string    `json:"-"`                            // Which pre-pass rule produced it, empty for model claims
}

// financialMarkers flag claims whose text is financial even when the
// extractor typed them otherwise.
var financialMarkers = []string{"stock", "price", "market cap", "revenue", "billion", "million", "valuation"}

// HasFinancialMarkers reports whether text mentions market or monetary
// figures. Claims matching are treated as financial regardless of their
// extracted type: they get market-data queries and the recency-focused
// verification prompt.
func HasFinancialMarkers(text string) bool {
	lower := strings.ToLower(text)
	for _, m := range financialMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// ClaimType categorizes the nature of the claim
type ClaimType string

const (
	ClaimTypeFinancial  ClaimType = "financial"  // Revenue, prices, market caps, valuations
	ClaimTypeStatistic  ClaimType = "statistic"  // Percentages, ratios, counts
	ClaimTypeDate       ClaimType = "date"       // Specific dates and timelines
	ClaimTypeTechnical  ClaimType = "technical"  // Specifications and measurements
	ClaimTypeScientific ClaimType = "scientific" // Research findings
	ClaimTypeHistorical ClaimType = "historical" // Founding events, past occurrences
	ClaimTypeGeneral    ClaimType = "general"    // Everything else
)

// Priority returns the review ordering for a claim type. Lower sorts
// first; financial and statistical claims go stale fastest so they lead.
func (t ClaimType) Priority() int {
	switch t {
	case ClaimTypeFinancial:
		return 0
	case ClaimTypeStatistic:
		return 1
	case ClaimTypeDate:
		return 2
	case ClaimTypeTechnical:
		return 3
	case ClaimTypeScientific:
		return 4
	case ClaimTypeHistorical:
		return 5
	default:
		return 6
	}
}

// KnownType reports whether t is one of the canonical claim types.
func KnownType(t ClaimType) bool {
	switch t {
	case ClaimTypeFinancial, ClaimTypeStatistic, ClaimTypeDate,
		ClaimTypeTechnical, ClaimTypeScientific, ClaimTypeHistorical,
		ClaimTypeGeneral:
		return true
	}
	return false
}
