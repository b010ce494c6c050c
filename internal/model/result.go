package model

// Status is the adjudicated verdict for a claim. There is no "unknown":
// anything that cannot be confirmed resolves to StatusFalse.
type Status string

const (
	StatusVerified   Status = "verified"   // Confirmed by multiple current, authoritative sources
	StatusInaccurate Status = "inaccurate" // Close but wrong or outdated; CorrectValue holds the fix
	StatusFalse      Status = "false"      // Contradicted, mythical, or unsupported
)

// Confidence expresses how strongly the evidence backed the verdict.
// It is display metadata only; no routing decision reads it.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ParseMethod records which parsing path produced a verdict
type ParseMethod string

const (
	ParsedViaStructuredOutput ParseMethod = "structured" // Valid JSON extracted from the model response
	ParsedViaHeuristic        ParseMethod = "heuristic"  // Keyword-based fallback over free text
)

// SearchResult is a single hit returned by the web search client
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Source is a citation attached to a verdict
type Source struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Relevance string `json:"relevance,omitempty"`
}

// Verdict is the adjudicator's structured judgment about one claim
type Verdict struct {
	Status       Status      `json:"status"`
	Explanation  string      `json:"explanation"`
	CorrectValue string      `json:"correct_value,omitempty"` // Required in practice when Status is inaccurate
	Confidence   Confidence  `json:"confidence"`
	IsMyth       bool        `json:"is_myth"`
	IsOutdated   bool        `json:"is_outdated"`
	Sources      []Source    `json:"sources"`
	ParsedVia    ParseMethod `json:"-"`
}

// Result is one claim merged with its verdict. Created once per claim,
// immutable afterward, held in document order for the life of one analysis.
type Result struct {
	Claim             string     `json:"claim"`
	Type              ClaimType  `json:"claim_type"`
	Entities          []string   `json:"entities,omitempty"`
	Status            Status     `json:"status"`
	Explanation       string     `json:"explanation"`
	CorrectValue      string     `json:"correct_value,omitempty"`
	Confidence        Confidence `json:"confidence"`
	IsMyth            bool       `json:"is_myth"`
	IsOutdated        bool       `json:"is_outdated"`
	Sources           []Source   `json:"sources"`
}

// MergeResult flattens a claim and its verdict into one record
func MergeResult(claim Claim, verdict Verdict) Result {
	return Result{
		Claim:        claim.Text,
		Type:         claim.Type,
		Entities:     claim.Entities,
		Status:       verdict.Status,
		Explanation:  verdict.Explanation,
		CorrectValue: verdict.CorrectValue,
		Confidence:   verdict.Confidence,
		IsMyth:       verdict.IsMyth,
		IsOutdated:   verdict.IsOutdated,
		Sources:      verdict.Sources,
	}
}

// Summary tallies verdicts across one analysis
type Summary struct {
	Total            int `json:"total"`
	Verified         int `json:"verified"`
	Inaccurate       int `json:"inaccurate"`
	False            int `json:"false"`
	MythsDetected    int `json:"myths_detected"`
	OutdatedDetected int `json:"outdated_detected"`
}
