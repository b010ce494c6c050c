// Package myth holds a static table of known-false claim patterns.
// Well-known myths are cheap to recognize exactly and expensive for a
// search-and-model pipeline to re-derive every time, so a match here
// short-circuits all downstream work for the claim.
package myth

import (
	"regexp"

	"github.com/factforge/factforge/internal/model"
)

type entry struct {
	re          *regexp.Regexp
	correct     string
	explanation string
}

// Table order is fixed; first match wins.
var knownMyths = []entry{
	{
		re:          regexp.MustCompile(`(?i)10% of (?:the |their |our )?brain`),
		correct:     "Humans use virtually all parts of their brain",
		explanation: "This is a debunked myth. Brain scans show activity throughout the entire brain.",
	},
	{
		re:          regexp.MustCompile(`(?i)great wall.*space`),
		correct:     "The Great Wall is not visible from space with naked eye",
		explanation: "Astronauts have confirmed this is a myth. The wall is too narrow.",
	},
	{
		re:          regexp.MustCompile(`(?i)goldfish.*memory`),
		correct:     "Goldfish can remember things for months",
		explanation: "Studies show goldfish have memory spans of at least 3 months.",
	},
	{
		re:          regexp.MustCompile(`(?i)lightning.*twice`),
		correct:     "Lightning frequently strikes the same place",
		explanation: "Tall structures like the Empire State Building are struck dozens of times per year.",
	},
	{
		re:          regexp.MustCompile(`(?i)sugar.*hyperactiv`),
		correct:     "Sugar does not cause hyperactivity in children",
		explanation: "Multiple scientific studies have debunked this myth.",
	},
	{
		re:          regexp.MustCompile(`(?i)cracking.*arthritis`),
		correct:     "Knuckle cracking does not cause arthritis",
		explanation: "Long-term studies found no correlation between knuckle cracking and arthritis.",
	},
	{
		re:          regexp.MustCompile(`(?i)bats are blind`),
		correct:     "Bats can see quite well",
		explanation: "All bat species have functional eyes and many have excellent night vision.",
	},
	{
		re:          regexp.MustCompile(`(?i)bulls.*red`),
		correct:     "Bulls are colorblind to red; they react to movement",
		explanation: "Bulls charge at the cape's movement, not its color.",
	},
}

// Check matches claim text against the myth table. A hit returns a
// complete high-confidence verdict; nil means no myth matched and the
// claim proceeds to search and adjudication.
func Check(claimText string) *model.Verdict {
	for _, m := range knownMyths {
		if m.re.MatchString(claimText) {
			return &model.Verdict{
				Status:       model.StatusFalse,
				Explanation:  m.explanation,
				CorrectValue: m.correct,
				Confidence:   model.ConfidenceHigh,
				IsMyth:       true,
				Sources: []model.Source{
					{Title: "Scientific Consensus", URL: "https://www.snopes.com", Relevance: "Myth debunked"},
				},
			}
		}
	}
	return nil
}
