package parse

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/factforge/factforge/internal/model"
)

// RawVerdict is the adjudicator payload before normalization. Fields stay
// loose here; verify backfills and canonicalizes them once at the boundary.
type RawVerdict struct {
	Status       string         `json:"status"`
	Explanation  string         `json:"explanation"`
	CorrectValue any            `json:"correct_value"`
	Confidence   string         `json:"confidence"`
	IsMyth       bool           `json:"is_myth"`
	IsOutdated   bool           `json:"is_outdated"`
	Sources      []model.Source `json:"sources"`
}

// Verdict extracts a structured verdict payload from model output.
func Verdict(text string) (*RawVerdict, bool) {
	obj, ok := Object(text)
	if !ok {
		return nil, false
	}

	var v RawVerdict
	if err := json.Unmarshal(obj, &v); err != nil {
		return nil, false
	}

	return &v, true
}

// CorrectValueString renders the corrected fact, tolerating models that
// emit a bare number or null instead of a string.
func (v *RawVerdict) CorrectValueString() string {
	switch val := v.CorrectValue.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// NormalizeStatus folds status synonyms into the three canonical values.
// Unrecognized strings resolve to false: flagging content as unverified is
// always safer than vouching for it.
func NormalizeStatus(raw string) model.Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "verified", "true", "correct", "accurate", "confirmed":
		return model.StatusVerified
	case "inaccurate", "outdated", "partially", "partially correct", "partially true":
		return model.StatusInaccurate
	default:
		return model.StatusFalse
	}
}
