package verify

import "github.com/factforge/factforge/internal/model"

// Summarize tallies verdicts across one analysis. Any status that is not
// verified or inaccurate counts as false, mirroring adjudicator
// normalization. Myth and outdated flags are counted independently of
// status.
func Summarize(results []model.Result) model.Summary {
	summary := model.Summary{Total: len(results)}

	for _, r := range results {
		switch r.Status {
		case model.StatusVerified:
			summary.Verified++
		case model.StatusInaccurate:
			summary.Inaccurate++
		default:
			summary.False++
		}

		if r.IsMyth {
			summary.MythsDetected++
		}
		if r.IsOutdated {
			summary.OutdatedDetected++
		}
	}

	return summary
}
