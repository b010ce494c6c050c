package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/factforge/factforge/internal/model"
)

// Renderer writes reports as JSON, Markdown, and a stdout summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}

	return nil
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Fact-Check Report: %s\n\n", report.Subject)
	fmt.Fprintf(&b, "**Source:** %s\n\n", report.Source)
	fmt.Fprintf(&b, "**Checked:** %s\n\n", report.CheckedAt.Format("2006-01-02 15:04 UTC"))

	s := report.Summary
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "| Total | Verified | Inaccurate | False | Myths | Outdated |\n")
	fmt.Fprintf(&b, "|-------|----------|------------|-------|-------|----------|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d | %d | %d |\n\n",
		s.Total, s.Verified, s.Inaccurate, s.False, s.MythsDetected, s.OutdatedDetected)

	b.WriteString("## Claims\n\n")
	for i, result := range report.Results {
		fmt.Fprintf(&b, "### %d. %s %s\n\n", i+1, statusIcon(result.Status), result.Claim)
		fmt.Fprintf(&b, "- **Status:** %s\n", result.Status)
		fmt.Fprintf(&b, "- **Type:** %s\n", result.Type)
		fmt.Fprintf(&b, "- **Confidence:** %s\n", result.Confidence)
		if result.CorrectValue != "" {
			fmt.Fprintf(&b, "- **Correct value:** %s\n", result.CorrectValue)
		}
		if result.IsMyth {
			b.WriteString("- **Known myth**\n")
		}
		if result.IsOutdated {
			b.WriteString("- **Outdated figure**\n")
		}
		fmt.Fprintf(&b, "\n%s\n\n", result.Explanation)

		if len(result.Sources) > 0 {
			b.WriteString("Sources:\n\n")
			for _, src := range result.Sources {
				fmt.Fprintf(&b, "- [%s](%s)", src.Title, src.URL)
				if src.Relevance != "" {
					fmt.Fprintf(&b, " - %s", src.Relevance)
				}
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n\nGenerated by FactForge. Verdicts are model-assisted and should be reviewed before publication.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	return nil
}

// RenderSummary prints a one-screen summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	s := report.Summary

	fmt.Printf("\n%s\n", report.Subject)
	fmt.Printf("Claims examined: %d\n", s.Total)
	fmt.Printf("  ✓ Verified:   %d\n", s.Verified)
	fmt.Printf("  ~ Inaccurate: %d\n", s.Inaccurate)
	fmt.Printf("  ✗ False:      %d\n", s.False)
	if s.MythsDetected > 0 {
		fmt.Printf("  Myths detected:    %d\n", s.MythsDetected)
	}
	if s.OutdatedDetected > 0 {
		fmt.Printf("  Outdated figures:  %d\n", s.OutdatedDetected)
	}
}

func statusIcon(status model.Status) string {
	switch status {
	case model.StatusVerified:
		return "✓"
	case model.StatusInaccurate:
		return "~"
	default:
		return "✗"
	}
}
