package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/factforge/factforge/internal/model"
)

// numericPattern pairs a sentence-level regex with the claim type it
// detects. The pre-pass runs before the model so obvious statistics are
// never lost to an under-extracting chunk response.
type numericPattern struct {
	re   *regexp.Regexp
	kind model.ClaimType
}

var numericPatterns = []numericPattern{
	// Percentages with surrounding movement context
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?%\s*(?:of|increase|decrease|growth|decline|rise|fall)[^.]*\.)`), model.ClaimTypeStatistic},
	// Money amounts, optionally with a magnitude word
	{regexp.MustCompile(`(?i)(\$[\d,]+(?:\.\d+)?(?:\s*(?:billion|million|trillion))?[^.]*\.)`), model.ClaimTypeFinancial},
	// Years with founding/temporal context
	{regexp.MustCompile(`(?i)((?:in|since|from|founded|established|started)\s*\d{4}[^.]*\.)`), model.ClaimTypeDate},
	// Large comma-grouped counts with a unit
	{regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})+(?:\s*(?:people|users|customers|employees|downloads))[^.]*\.)`), model.ClaimTypeStatistic},
}

// minPatternMatch filters out fragments too short to stand as claims.
const minPatternMatch = 20

// PrePassClaims runs the regex pre-pass over the raw document text and
// seeds claims the model might omit. Each claim carries its detected type,
// a low-specificity search query, and the rule that produced it.
func PrePassClaims(text string) []model.Claim {
	var claims []model.Claim

	for _, p := range numericPatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			match := m[1]
			if len(match) <= minPatternMatch {
				continue
			}
			query := match
			if len(query) > 100 {
				query = query[:100]
			}
			claims = append(claims, model.Claim{
				Text:              strings.TrimSpace(match),
				Type:              p.kind,
				SearchQuery:       query,
				VerificationFocus: fmt.Sprintf("Verify the %s mentioned", p.kind),
				Heuristic:         "pattern:" + string(p.kind),
			})
		}
	}

	return claims
}
