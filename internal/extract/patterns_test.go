package extract

import (
	"strings"
	"testing"

	"github.com/factforge/factforge/internal/model"
)

func TestPrePassClaims_Percentage(t *testing.T) {
	text := "Adoption surged last quarter. Revenue saw a 45% increase across all regions in 2023."

	claims := PrePassClaims(text)
	found := false
	for _, c := range claims {
		if strings.Contains(c.Text, "45%") && c.Type == model.ClaimTypeStatistic {
			found = true
			if c.SearchQuery == "" {
				t.Error("pre-pass claim missing search query")
			}
			if !strings.HasPrefix(c.Heuristic, "pattern:") {
				t.Errorf("unexpected heuristic tag: %q", c.Heuristic)
			}
		}
	}
	if !found {
		t.Fatalf("expected a statistic claim for the percentage, got %+v", claims)
	}
}

func TestPrePassClaims_Money(t *testing.T) {
	text := "The startup raised $2.5 billion in its latest funding round."

	claims := PrePassClaims(text)
	found := false
	for _, c := range claims {
		if c.Type == model.ClaimTypeFinancial && strings.Contains(c.Text, "$2.5 billion") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a financial claim, got %+v", claims)
	}
}

func TestPrePassClaims_FoundingYear(t *testing.T) {
	text := "The company was founded 1998 by two graduate students in a garage."

	claims := PrePassClaims(text)
	found := false
	for _, c := range claims {
		if c.Type == model.ClaimTypeDate {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a date claim, got %+v", claims)
	}
}

func TestPrePassClaims_LargeNumberWithUnit(t *testing.T) {
	text := "The platform now serves 1,500,000 users across forty countries worldwide."

	claims := PrePassClaims(text)
	found := false
	for _, c := range claims {
		if c.Type == model.ClaimTypeStatistic && strings.Contains(c.Text, "1,500,000 users") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a statistic claim for the user count, got %+v", claims)
	}
}

func TestPrePassClaims_IgnoresShortMatches(t *testing.T) {
	claims := PrePassClaims("In 2020.")
	if len(claims) != 0 {
		t.Errorf("expected short fragments filtered, got %+v", claims)
	}
}
