package parse

import (
	"encoding/json"

	"github.com/factforge/factforge/internal/model"
)

type claimEnvelope struct {
	Claims []model.Claim `json:"claims"`
}

// ClaimList extracts a claim list from model output. Returns false when no
// parsable claims payload is present; the caller treats that as an empty
// contribution from the chunk, never as a hard failure.
func ClaimList(text string) ([]model.Claim, bool) {
	obj, ok := Object(text)
	if !ok {
		return nil, false
	}

	var envelope claimEnvelope
	if err := json.Unmarshal(obj, &envelope); err != nil {
		return nil, false
	}

	return envelope.Claims, true
}
