package verify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/factforge/factforge/internal/model"
	"github.com/factforge/factforge/internal/myth"
)

// ProgressFunc receives human-readable verification progress messages
type ProgressFunc func(msg string)

// EvidenceGatherer supplies pooled, ranked search evidence for one claim
type EvidenceGatherer interface {
	GatherEvidence(ctx context.Context, claim model.Claim) []model.SearchResult
}

// Verifier drives claims through myth lookup, evidence gathering, and
// adjudication, strictly in input order. Claims run sequentially with a
// small delay between them; the model and search clients are shared
// rate-limited resources.
type Verifier struct {
	adjudicator *Adjudicator
	evidence    EvidenceGatherer
	claimDelay  time.Duration
}

// NewVerifier assembles the verification driver
func NewVerifier(adjudicator *Adjudicator, evidence EvidenceGatherer, claimDelay time.Duration) *Verifier {
	return &Verifier{
		adjudicator: adjudicator,
		evidence:    evidence,
		claimDelay:  claimDelay,
	}
}

// Verify adjudicates every claim and returns one result per claim, in
// input order. A single claim's failure is converted into a false record
// rather than aborting the batch.
func (v *Verifier) Verify(ctx context.Context, claims []model.Claim, progress ProgressFunc) []model.Result {
	results := make([]model.Result, 0, len(claims))

	for i, claim := range claims {
		if progress != nil {
			progress(fmt.Sprintf("Verifying claim %d/%d...", i+1, len(claims)))
		}

		result := v.verifyOne(ctx, claim)
		results = append(results, result)

		if i < len(claims)-1 && v.claimDelay > 0 {
			select {
			case <-ctx.Done():
				// Remaining claims become failure records below.
			case <-time.After(v.claimDelay):
			}
		}

		if ctx.Err() != nil {
			for _, rest := range claims[i+1:] {
				results = append(results, failureResult(rest, ctx.Err()))
			}
			break
		}
	}

	return results
}

// verifyOne runs the per-claim state machine. Panics from any stage are
// contained here so one bad claim cannot take down the batch.
func (v *Verifier) verifyOne(ctx context.Context, claim model.Claim) (result model.Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("claim", claim.Text).Msg("claim verification panicked")
			result = failureResult(claim, fmt.Errorf("internal error: %v", r))
		}
	}()

	if verdict := myth.Check(claim.Text); verdict != nil {
		return model.MergeResult(claim, *verdict)
	}

	// A claim whose text carries financial markers is verified as
	// financial even when the extractor typed it otherwise: market-data
	// queries, the recency-focused prompt, and a financial result record.
	if claim.Type != model.ClaimTypeFinancial && model.HasFinancialMarkers(claim.Text) {
		claim.Type = model.ClaimTypeFinancial
	}

	evidence := v.gather(ctx, claim)

	verdict, err := v.adjudicator.Adjudicate(ctx, claim, evidence)
	if err != nil {
		return failureResult(claim, err)
	}

	verdict.Sources = backfillSources(verdict.Sources, evidence)

	return model.MergeResult(claim, verdict)
}

func (v *Verifier) gather(ctx context.Context, claim model.Claim) []model.SearchResult {
	if v.evidence == nil {
		return nil
	}
	return v.evidence.GatherEvidence(ctx, claim)
}

// backfillSources keeps the adjudicator's own citations first, then tops
// up to three with distinct-by-URL raw search hits.
func backfillSources(cited []model.Source, evidence []model.SearchResult) []model.Source {
	sources := make([]model.Source, 0, 3)
	seen := make(map[string]bool)

	for _, s := range cited {
		if len(sources) >= 3 {
			break
		}
		if s.URL == "" || seen[s.URL] {
			continue
		}
		seen[s.URL] = true
		sources = append(sources, s)
	}

	for _, e := range evidence {
		if len(sources) >= 3 {
			break
		}
		if e.URL == "" || seen[e.URL] {
			continue
		}
		seen[e.URL] = true
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

	return sources
}

// failureResult records a claim that could not be verified. False with
// low confidence is the safe shape: flagged for review, never vouched for.
func failureResult(claim model.Claim, err error) model.Result {
	return model.Result{
		Claim:       claim.Text,
		Type:        claim.Type,
		Entities:    claim.Entities,
		Status:      model.StatusFalse,
		Explanation: fmt.Sprintf("Verification error: %v. Manual review recommended.", err),
		Confidence:  model.ConfidenceLow,
		Sources:     []model.Source{},
	}
}
