package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultAttempts = 3
	baseBackoff     = 2 * time.Second
	maxBackoff      = 8 * time.Second
)

// WithRetry invokes the client with bounded exponential backoff. Only the
// transport call is retried; callers handle parse failures themselves so a
// malformed response is never re-requested.
func WithRetry(ctx context.Context, client Client, attempts int, system, user string) (string, error) {
	if attempts <= 0 {
		attempts = defaultAttempts
	}

	var lastErr error
	backoff := baseBackoff

	for attempt := 1; attempt <= attempts; attempt++ {
		response, err := client.Invoke(ctx, system, user)
		if err == nil {
			return response, nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Str("provider", client.Name()).
			Msg("model invocation failed, retrying")

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}

	return "", lastErr
}
