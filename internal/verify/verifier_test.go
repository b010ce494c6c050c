package verify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/factforge/factforge/internal/model"
	"github.com/factforge/factforge/internal/trust"
)

type mockGatherer struct {
	evidence []model.SearchResult
	calls    int
	seen     []model.Claim
}

func (m *mockGatherer) GatherEvidence(ctx context.Context, claim model.Claim) []model.SearchResult {
	m.calls++
	m.seen = append(m.seen, claim)
	return m.evidence
}

func newTestVerifier(client *mockLLM, gatherer EvidenceGatherer) *Verifier {
	adjudicator := NewAdjudicator(client, trust.NewScorer(nil), 1)
	return NewVerifier(adjudicator, gatherer, 0)
}

func TestVerify_MythShortCircuitSkipsSearch(t *testing.T) {
	client := &mockLLM{}
	gatherer := &mockGatherer{}
	v := newTestVerifier(client, gatherer)

	claims := []model.Claim{{Text: "Humans only use 10% of their brain", Type: model.ClaimTypeScientific}}
	results := v.Verify(context.Background(), claims, nil)

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.Status != model.StatusFalse || !r.IsMyth {
		t.Errorf("Status = %q, IsMyth = %v; want false myth", r.Status, r.IsMyth)
	}
	if gatherer.calls != 0 {
		t.Errorf("myth short-circuit performed %d searches, want 0", gatherer.calls)
	}
	if client.calls != 0 {
		t.Errorf("myth short-circuit invoked the model %d times, want 0", client.calls)
	}
}

func TestVerify_ModelFailureYieldsFalseRecordPerClaim(t *testing.T) {
	client := &mockLLM{err: errors.New("connection refused")}
	v := newTestVerifier(client, &mockGatherer{})

	claims := []model.Claim{
		{Text: "Claim one states a figure"},
		{Text: "Claim two states another figure"},
	}
	results := v.Verify(context.Background(), claims, nil)

	if len(results) != len(claims) {
		t.Fatalf("got %d results, want one per claim (%d)", len(results), len(claims))
	}
	for i, r := range results {
		if r.Status != model.StatusFalse {
			t.Errorf("result %d: Status = %q, want false", i, r.Status)
		}
		if r.Confidence != model.ConfidenceLow {
			t.Errorf("result %d: Confidence = %q, want low", i, r.Confidence)
		}
		if r.Explanation == "" {
			t.Errorf("result %d: explanation must carry the error", i)
		}
	}
}

func TestVerify_PromotesKeywordFinancialClaims(t *testing.T) {
	client := &mockLLM{response: `{"status": "verified", "explanation": "ok"}`}
	gatherer := &mockGatherer{}
	v := newTestVerifier(client, gatherer)

	claims := []model.Claim{{
		Text: "The company posted revenue of 3 billion dollars",
		Type: model.ClaimTypeStatistic,
	}}
	results := v.Verify(context.Background(), claims, nil)

	if results[0].Type != model.ClaimTypeFinancial {
		t.Errorf("result Type = %q, want financial", results[0].Type)
	}
	if len(gatherer.seen) != 1 || gatherer.seen[0].Type != model.ClaimTypeFinancial {
		t.Errorf("evidence gathering saw type %v, want financial", gatherer.seen)
	}
	if len(client.prompts) != 1 || !strings.Contains(client.prompts[0], "FINANCIAL claim") {
		t.Errorf("adjudication used the general template for a financial claim")
	}
}

func TestVerify_KeepsNonFinancialType(t *testing.T) {
	client := &mockLLM{response: `{"status": "verified", "explanation": "ok"}`}
	v := newTestVerifier(client, &mockGatherer{})

	claims := []model.Claim{{Text: "The treaty was signed in 1848", Type: model.ClaimTypeHistorical}}
	results := v.Verify(context.Background(), claims, nil)

	if results[0].Type != model.ClaimTypeHistorical {
		t.Errorf("result Type = %q, want historical", results[0].Type)
	}
}

func TestVerify_BackfillsSourcesFromEvidence(t *testing.T) {
	client := &mockLLM{
		response: `{"status": "verified", "explanation": "confirmed", "confidence": "high", "sources": [{"title": "Cited", "url": "https://www.reuters.com/cited", "relevance": "primary"}]}`,
	}
	gatherer := &mockGatherer{evidence: []model.SearchResult{
		{Title: "Cited", URL: "https://www.reuters.com/cited", Snippet: "dup of the citation"},
		{Title: "Extra A", URL: "https://www.bbc.com/a", Snippet: "more detail"},
		{Title: "Extra B", URL: "https://apnews.com/b", Snippet: "more detail"},
		{Title: "Extra C", URL: "https://www.nature.com/c", Snippet: "unused"},
	}}
	v := newTestVerifier(client, gatherer)

	results := v.Verify(context.Background(), []model.Claim{{Text: "a claim"}}, nil)

	sources := results[0].Sources
	if len(sources) != 3 {
		t.Fatalf("got %d sources, want 3", len(sources))
	}
	if sources[0].Title != "Cited" {
		t.Errorf("adjudicator citation should come first, got %q", sources[0].Title)
	}
	seen := make(map[string]bool)
	for _, s := range sources {
		if seen[s.URL] {
			t.Errorf("duplicate source URL %s", s.URL)
		}
		seen[s.URL] = true
	}
}

func TestVerify_ProgressIsOneBased(t *testing.T) {
	client := &mockLLM{response: `{"status": "verified", "explanation": "ok"}`}
	v := newTestVerifier(client, &mockGatherer{})

	var messages []string
	claims := []model.Claim{{Text: "first claim"}, {Text: "second claim"}}
	v.Verify(context.Background(), claims, func(msg string) {
		messages = append(messages, msg)
	})

	if len(messages) != 2 {
		t.Fatalf("got %d progress messages, want 2", len(messages))
	}
	if !strings.Contains(messages[0], "1/2") || !strings.Contains(messages[1], "2/2") {
		t.Errorf("progress should be 1-based with totals, got %v", messages)
	}
}

func TestVerify_PreservesInputOrder(t *testing.T) {
	client := &mockLLM{response: `{"status": "verified", "explanation": "ok"}`}
	v := newTestVerifier(client, &mockGatherer{})

	claims := []model.Claim{
		{Text: "alpha claim"},
		{Text: "Humans only use 10% of their brain"},
		{Text: "omega claim"},
	}
	results := v.Verify(context.Background(), claims, nil)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, claim := range claims {
		if results[i].Claim != claim.Text {
			t.Errorf("result %d = %q, want %q", i, results[i].Claim, claim.Text)
		}
	}
}

func TestBackfillSources_SkipsEmptyAndDuplicateURLs(t *testing.T) {
	cited := []model.Source{
		{Title: "no url"},
		{Title: "real", URL: "https://example.org/a"},
	}
	evidence := []model.SearchResult{
		{Title: "dup", URL: "https://example.org/a"},
		{Title: "new", URL: "https://example.org/b", Snippet: strings.Repeat("s", 300)},
	}

	sources := backfillSources(cited, evidence)
	if len(sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(sources))
	}
	if sources[0].URL != "https://example.org/a" || sources[1].URL != "https://example.org/b" {
		t.Errorf("unexpected backfill order: %+v", sources)
	}
	if len(sources[1].Relevance) != 200 {
		t.Errorf("relevance should truncate to 200 chars, got %d", len(sources[1].Relevance))
	}
}

func TestSummarize(t *testing.T) {
	var results []model.Result
	add := func(n int, status model.Status) {
		for i := 0; i < n; i++ {
			results = append(results, model.Result{Status: status})
		}
	}
	add(5, model.StatusVerified)
	add(2, model.StatusInaccurate)
	add(3, model.StatusFalse)
	results[7].IsMyth = true
	results[9].IsOutdated = true

	got := Summarize(results)
	want := model.Summary{
		Total:            10,
		Verified:         5,
		Inaccurate:       2,
		False:            3,
		MythsDetected:    1,
		OutdatedDetected: 1,
	}
	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}
}

func TestSummarize_UnknownStatusCountsAsFalse(t *testing.T) {
	results := []model.Result{{Status: "bogus"}}
	if got := Summarize(results); got.False != 1 {
		t.Errorf("unknown status counted as False = %d, want 1", got.False)
	}
}
