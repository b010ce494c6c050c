// Package verify turns extracted claims into adjudicated verdicts by
// pooling web evidence and putting it in front of a language model, with
// a keyword fallback for responses that refuse to be JSON.
package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/factforge/factforge/internal/llm"
	"github.com/factforge/factforge/internal/model"
	"github.com/factforge/factforge/internal/parse"
	"github.com/factforge/factforge/internal/trust"
)

const fallbackExplanation = "The claim could not be fully verified against available sources."

// Adjudicator invokes the model over a claim plus its evidence and
// normalizes the response into a Verdict. It never returns an empty
// verdict on a parseable transport success: a response that fails JSON
// extraction falls through to keyword classification.
type Adjudicator struct {
	client  llm.Client
	scorer  *trust.Scorer
	retries int
}

// NewAdjudicator wires the model client and the trust scorer used to tag
// evidence lines.
func NewAdjudicator(client llm.Client, scorer *trust.Scorer, retries int) *Adjudicator {
	return &Adjudicator{
		client:  client,
		scorer:  scorer,
		retries: retries,
	}
}

// Adjudicate produces a verdict for one claim. The returned error covers
// transport failure only; malformed model output is absorbed by the
// heuristic fallback.
func (a *Adjudicator) Adjudicate(ctx context.Context, claim model.Claim, evidence []model.SearchResult) (model.Verdict, error) {
	user := a.buildPrompt(claim, evidence)

	response, err := llm.WithRetry(ctx, a.client, a.retries, verificationSystemPrompt, user)
	if err != nil {
		return model.Verdict{}, fmt.Errorf("adjudicate claim: %w", err)
	}

	if raw, ok := parse.Verdict(response); ok {
		return normalizeVerdict(raw), nil
	}

	return heuristicVerdict(response, evidence), nil
}

func (a *Adjudicator) buildPrompt(claim model.Claim, evidence []model.SearchResult) string {
	block := a.formatEvidence(evidence)

	if claim.Type == model.ClaimTypeFinancial {
		return fmt.Sprintf(financialUserPrompt, claim.Text, block)
	}

	focus := claim.VerificationFocus
	if focus == "" {
		focus = "Verify accuracy of all facts and figures"
	}
	return fmt.Sprintf(verificationUserPrompt, claim.Text, focus, block)
}

// formatEvidence renders each hit with a reputation tag so the model can
// weight sources it has no other way to judge.
func (a *Adjudicator) formatEvidence(evidence []model.SearchResult) string {
	if len(evidence) == 0 {
		return noEvidenceBlock
	}

	var b strings.Builder
	for i, e := range evidence {
		tag := "Standard"
		if a.scorer.IsTrusted(e.URL) {
			tag = "TRUSTED"
		}
		fmt.Fprintf(&b, "[Source %d | %s]\nTitle: %s\nURL: %s\nContent: %s\n\n",
			i+1, tag, e.Title, e.URL, e.Snippet)
	}
	return strings.TrimRight(b.String(), "\n")
}

// normalizeVerdict canonicalizes a structured payload: status synonyms
// fold into the three canonical values and unset fields get explicit
// defaults instead of zero values leaking into output.
func normalizeVerdict(raw *parse.RawVerdict) model.Verdict {
	v := model.Verdict{
		Status:       parse.NormalizeStatus(raw.Status),
		Explanation:  raw.Explanation,
		CorrectValue: raw.CorrectValueString(),
		Confidence:   normalizeConfidence(raw.Confidence),
		IsMyth:       raw.IsMyth,
		IsOutdated:   raw.IsOutdated,
		Sources:      raw.Sources,
		ParsedVia:    model.ParsedViaStructuredOutput,
	}

	if v.Explanation == "" {
		v.Explanation = fallbackExplanation
	}
	if v.Sources == nil {
		v.Sources = []model.Source{}
	}

	return v
}

func normalizeConfidence(raw string) model.Confidence {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return model.ConfidenceHigh
	case "low":
		return model.ConfidenceLow
	default:
		return model.ConfidenceMedium
	}
}

// heuristicVerdict classifies a free-text response by keyword signal and
// cites the top raw search hits, since a non-JSON response names no
// sources of its own.
func heuristicVerdict(response string, evidence []model.SearchResult) model.Verdict {
	status, isMyth, isOutdated := parse.Classify(response)

	explanation := response
	if len(explanation) > 800 {
		explanation = explanation[:800]
	}
	if explanation == "" {
		explanation = fallbackExplanation
	}

	sources := make([]model.Source, 0, 3)
	for _, e := range evidence {
		if len(sources) >= 3 {
			break
		}
		relevance := e.Snippet
		if len(relevance) > 200 {
			relevance = relevance[:200]
		}
		sources = append(sources, model.Source{
			Title:     e.Title,
			URL:       e.URL,
			Relevance: relevance,
		})
	}

	return model.Verdict{
		Status:      status,
		Explanation: explanation,
		Confidence:  model.ConfidenceMedium,
		IsMyth:      isMyth,
		IsOutdated:  isOutdated,
		Sources:     sources,
		ParsedVia:   model.ParsedViaHeuristic,
	}
}
