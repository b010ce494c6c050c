package parse

import (
	"strings"

	"github.com/factforge/factforge/internal/model"
)

// Keyword signals scanned in priority order. False signals win over
// inaccurate, which wins over verified, so a response saying "the claim
// that X is a debunked myth, the correct figure is Y" resolves to false.
var (
	falseSignals = []string{
		"is false", "is incorrect", "is wrong", "debunked", "myth",
		"no evidence", "fabricated",
	}
	inaccurateSignals = []string{
		"outdated", "was correct", "old data", "previously", "no longer",
		"changed to", "now is",
	}
	verifiedSignals = []string{
		"verified", "confirmed", "accurate", "correct", "true", "matches",
	}
)

// Classify performs keyword classification over free text. This is the
// terminal parsing strategy: it never fails and defaults to false when no
// clear signal is present.
func Classify(text string) (status model.Status, isMyth, isOutdated bool) {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, falseSignals):
		status = model.StatusFalse
	case containsAny(lower, inaccurateSignals):
		status = model.StatusInaccurate
	case containsAny(lower, verifiedSignals):
		status = model.StatusVerified
	default:
		status = model.StatusFalse
	}

	isMyth = strings.Contains(lower, "myth")
	isOutdated = strings.Contains(lower, "outdated") || strings.Contains(lower, "old ")

	return status, isMyth, isOutdated
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
