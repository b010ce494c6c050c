package extract

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/factforge/factforge/internal/model"
)

// mockClient implements llm.Client with canned responses per call
type mockClient struct {
	responses []string
	errs      []error
	calls     int
}

func (m *mockClient) Name() string                   { return "mock" }
func (m *mockClient) Available(context.Context) bool { return true }

func (m *mockClient) Invoke(_ context.Context, _, _ string) (string, error) {
	i := m.calls
	m.calls++
	if i < len(m.errs) && m.errs[i] != nil {
		return "", m.errs[i]
	}
	if i < len(m.responses) {
		return m.responses[i], nil
	}
	return `{"claims": []}`, nil
}

func TestExtractor_BasicExtraction(t *testing.T) {
	client := &mockClient{
		responses: []string{
			"```json\n{\"claims\":[{\"claim\":\"Company X grew revenue by 45% in 2023\",\"claim_type\":\"financial\",\"entities\":[\"Company X\"],\"search_query\":\"Company X revenue 2023\"}]}\n```",
		},
	}

	extractor := NewExtractor(client, WithoutPrePass(), WithRetries(1))
	claims, err := extractor.Extract(context.Background(), "Company X grew revenue by 45% in 2023.", nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(claims) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(claims))
	}
	c := claims[0]
	if c.Type != model.ClaimTypeFinancial {
		t.Errorf("expected financial, got %s", c.Type)
	}
	if c.VerificationFocus == "" {
		t.Error("expected verification focus to be backfilled")
	}
}

func TestExtractor_BadChunkDoesNotVoidDocument(t *testing.T) {
	para1 := strings.Repeat("first paragraph content here ", 10)
	para2 := strings.Repeat("second paragraph content here ", 10)

	client := &mockClient{
		errs: []error{errors.New("rate limited"), nil},
		responses: []string{
			"", // consumed by the error slot
			`{"claims":[{"claim":"The observatory recorded 12,000 visitors during 2024","claim_type":"statistic"}]}`,
		},
	}

	extractor := NewExtractor(client, WithoutPrePass(), WithRetries(1), WithChunkSize(320))
	claims, err := extractor.Extract(context.Background(), para1+"\n\n"+para2, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(claims) != 1 {
		t.Fatalf("expected claims from the surviving chunk, got %d", len(claims))
	}
}

func TestExtractor_TypeBackfill(t *testing.T) {
	tests := []struct {
		claim string
		want  model.ClaimType
	}{
		{"The company reported $4 billion in revenue for the period", model.ClaimTypeFinancial},
		{"Unemployment fell to 3.4 percent nationwide last quarter", model.ClaimTypeStatistic},
		{"The observatory opened its doors back in 1962 to the public", model.ClaimTypeDate},
		{"The institute was established by royal charter centuries ago", model.ClaimTypeHistorical},
		{"The bridge spans the strait between the two islands", model.ClaimTypeGeneral},
	}

	for _, tt := range tests {
		claim := model.Claim{Text: tt.claim}
		categorize(&claim)
		if claim.Type != tt.want {
			t.Errorf("categorize(%q) type = %s, want %s", tt.claim, claim.Type, tt.want)
		}
		if claim.SearchQuery == "" {
			t.Errorf("categorize(%q) left search query empty", tt.claim)
		}
	}
}

func TestExtractor_TypePriorityOrdering(t *testing.T) {
	client := &mockClient{
		responses: []string{
			`{"claims":[
				{"claim":"The telescope array came online in 2019 near the dry plateau","claim_type":"date"},
				{"claim":"Operating costs reached $90 million during the last fiscal year","claim_type":"financial"},
				{"claim":"Observation uptime improved by 12% after the mirror refit","claim_type":"statistic"}
			]}`,
		},
	}

	extractor := NewExtractor(client, WithoutPrePass(), WithRetries(1))
	claims, err := extractor.Extract(context.Background(), "some document", nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(claims) != 3 {
		t.Fatalf("expected 3 claims, got %d", len(claims))
	}
	wantOrder := []model.ClaimType{model.ClaimTypeFinancial, model.ClaimTypeStatistic, model.ClaimTypeDate}
	for i, want := range wantOrder {
		if claims[i].Type != want {
			t.Errorf("position %d: got %s, want %s", i, claims[i].Type, want)
		}
	}
}

func TestExtractor_NilClientIsSetupError(t *testing.T) {
	extractor := NewExtractor(nil)
	if _, err := extractor.Extract(context.Background(), "text", nil); err == nil {
		t.Fatal("expected setup error for nil client")
	}
}
