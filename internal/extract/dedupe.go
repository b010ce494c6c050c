package extract

import (
	"regexp"
	"strings"

	"github.com/factforge/factforge/internal/model"
)

const (
	// similarityThreshold is the token-set Jaccard similarity at which two
	// claims count as duplicates.
	similarityThreshold = 0.7

	// minNormalizedLength drops fragments too short to verify.
	minNormalizedLength = 15
)

var (
	// Keep word characters, whitespace, and the symbols that carry meaning
	// in factual claims: % $ .
	stripRe    = regexp.MustCompile(`[^\w\s%$.]`)
	collapseRe = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes claim text for comparison: lowercase, punctuation
// stripped except % $ ., whitespace runs collapsed to one space.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = stripRe.ReplaceAllString(text, "")
	text = collapseRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Similar reports whether two claim texts exceed the Jaccard similarity
// threshold over their normalized token sets. Empty token sets are never
// similar to anything.
func Similar(a, b string, threshold float64) bool {
	wordsA := tokenSet(Normalize(a))
	wordsB := tokenSet(Normalize(b))

	if len(wordsA) == 0 || len(wordsB) == 0 {
		return false
	}

	intersection := 0
	for w := range wordsA {
		if wordsB[w] {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection

	return float64(intersection)/float64(union) >= threshold
}

// Deduplicate keeps the first occurrence of each distinct claim. A claim
// survives iff its normalized text meets the length floor and it is not
// similar to any already-kept claim. O(n^2) against the kept set; claim
// counts per document are tens, not thousands.
func Deduplicate(claims []model.Claim) []model.Claim {
	unique := make([]model.Claim, 0, len(claims))

	for _, claim := range claims {
		text := strings.TrimSpace(claim.Text)
		if text == "" || len(Normalize(text)) < minNormalizedLength {
			continue
		}

		duplicate := false
		for _, kept := range unique {
			if Similar(text, kept.Text, similarityThreshold) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, claim)
		}
	}

	return unique
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(text) {
		set[w] = true
	}
	return set
}
