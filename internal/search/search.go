// Package search gathers web evidence for claims. It issues one or more
// engine queries per claim, deduplicates hits by URL, and hands
// trust-ranked evidence to the adjudicator.
package search

import (
	"context"

	"github.com/factforge/factforge/internal/model"
)

// Client is the external search-engine contract. Implementations return
// an ordered hit list; errors are swallowed by the orchestrator, which
// treats any failure as zero evidence.
type Client interface {
	// Search returns up to maxResults hits for the query
	Search(ctx context.Context, query string, maxResults int) ([]model.SearchResult, error)

	// Name returns the engine name
	Name() string
}
