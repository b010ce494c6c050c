package model

import "time"

// Report is the complete output of one document analysis
type Report struct {
	ID        string    `json:"id"`              // UUID assigned per analysis
	Subject   string    `json:"subject"`         // Document name or URL slug
	Source    string    `json:"source"`          // File path or URL that was analyzed
	CheckedAt time.Time `json:"checked_at"`      // When the analysis ran
	Claims    int       `json:"claims_examined"` // Number of claims that went through verification
	Results   []Result  `json:"results"`         // One record per claim, in verification order
	Summary   Summary   `json:"summary"`
}
