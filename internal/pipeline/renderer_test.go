package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/factforge/factforge/internal/model"
)

func sampleReport() *model.Report {
	return &model.Report{
		ID:        "4d1c5e7a-0000-0000-0000-000000000000",
		Subject:   "annual report",
		Source:    "annual-report.txt",
		CheckedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Claims:    2,
		Results: []model.Result{
			{
				Claim:        "Company X grew revenue by 45% in 2023",
				Type:         model.ClaimTypeFinancial,
				Status:       model.StatusInaccurate,
				Explanation:  "Filings state 47% growth.",
				CorrectValue: "47%",
				Confidence:   model.ConfidenceHigh,
				IsOutdated:   true,
				Sources: []model.Source{
					{Title: "Annual filing", URL: "https://example.com/filing", Relevance: "states 47%"},
				},
			},
			{
				Claim:       "The company was founded in 1998",
				Type:        model.ClaimTypeDate,
				Status:      model.StatusVerified,
				Explanation: "Confirmed by registry records.",
				Confidence:  model.ConfidenceHigh,
				Sources:     []model.Source{},
			},
		},
		Summary: model.Summary{Total: 2, Verified: 1, Inaccurate: 1, OutdatedDetected: 1},
	}
}

func TestRenderJSON(t *testing.T) {
	r := NewRenderer(true)
	path := filepath.Join(t.TempDir(), "report.json")

	if err := r.RenderJSON(sampleReport(), path); err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded model.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Summary.Total != 2 || len(decoded.Results) != 2 {
		t.Errorf("round trip lost data: %+v", decoded.Summary)
	}
	if decoded.Results[0].CorrectValue != "47%" {
		t.Errorf("CorrectValue = %q, want 47%%", decoded.Results[0].CorrectValue)
	}
}

func TestRenderMarkdown(t *testing.T) {
	r := NewRenderer(true)
	path := filepath.Join(t.TempDir(), "report.md")

	if err := r.RenderMarkdown(sampleReport(), path); err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	md := string(data)

	for _, want := range []string{
		"# Fact-Check Report: annual report",
		"Company X grew revenue by 45% in 2023",
		"**Correct value:** 47%",
		"**Outdated figure**",
		"[Annual filing](https://example.com/filing) - states 47%",
		"Generated by FactForge",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestRenderMarkdown_NoFooter(t *testing.T) {
	r := NewRenderer(false)
	path := filepath.Join(t.TempDir(), "report.md")

	if err := r.RenderMarkdown(sampleReport(), path); err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "Generated by FactForge") {
		t.Error("footer rendered despite being disabled")
	}
}
