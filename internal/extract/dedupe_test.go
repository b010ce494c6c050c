package extract

import (
	"testing"

	"github.com/factforge/factforge/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Revenue GREW by 45%!  ", "revenue grew by 45%"},
		{"Price: $3.5 billion (up)", "price $3.5 billion up"},
		{"a\t b\n  c", "a b c"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSimilar(t *testing.T) {
	a := "Company X grew revenue by 45% in 2023"
	b := "Company X grew revenue by 45% in 2023."
	if !Similar(a, b, 0.7) {
		t.Error("expected near-identical claims to be similar")
	}

	c := "The Great Wall of China is visible from space"
	if Similar(a, c, 0.7) {
		t.Error("expected unrelated claims to differ")
	}

	if Similar("", "anything at all here", 0.7) {
		t.Error("empty token sets are never similar")
	}
	if Similar("!!!", "???", 0.7) {
		t.Error("punctuation-only strings normalize to empty and are never similar")
	}
}

func TestDeduplicate_KeepsFirstOfSimilarPair(t *testing.T) {
	claims := []model.Claim{
		{Text: "Company X grew revenue by 45% in 2023", Type: model.ClaimTypeFinancial},
		{Text: "Company X grew revenue by 45% in 2023.", Type: model.ClaimTypeStatistic},
		{Text: "The product launched with 12,000 users in its first month", Type: model.ClaimTypeStatistic},
	}

	unique := Deduplicate(claims)
	if len(unique) != 2 {
		t.Fatalf("expected 2 unique claims, got %d", len(unique))
	}
	if unique[0].Type != model.ClaimTypeFinancial {
		t.Error("expected the first-encountered duplicate to win")
	}
}

func TestDeduplicate_DropsShortClaims(t *testing.T) {
	claims := []model.Claim{
		{Text: "Too short"},
		{Text: "   "},
		{Text: ""},
	}

	if unique := Deduplicate(claims); len(unique) != 0 {
		t.Errorf("expected all sub-floor claims dropped, got %d", len(unique))
	}
}

func TestDeduplicate_Idempotent(t *testing.T) {
	claims := []model.Claim{
		{Text: "Company X grew revenue by 45% in 2023"},
		{Text: "Company X revenue grew 45% during 2023"},
		{Text: "Humans only use 10% of their brain capacity"},
		{Text: "The company was founded in 1998 in a garage"},
	}

	once := Deduplicate(claims)
	twice := Deduplicate(once)

	if len(once) != len(twice) {
		t.Fatalf("deduplicate is not a fixed point: %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Text != twice[i].Text {
			t.Errorf("claim %d changed between passes", i)
		}
	}
}
