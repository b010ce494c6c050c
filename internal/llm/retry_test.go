package llm

import (
	"context"
	"errors"
	"testing"
)

type flakyClient struct {
	failures int
	calls    int
}

func (c *flakyClient) Name() string { return "flaky" }

func (c *flakyClient) Invoke(ctx context.Context, system, user string) (string, error) {
	c.calls++
	if c.calls <= c.failures {
		return "", errors.New("rate limited")
	}
	return "ok", nil
}

func (c *flakyClient) Available(ctx context.Context) bool { return true }

func TestWithRetry_SucceedsFirstAttempt(t *testing.T) {
	client := &flakyClient{}

	response, err := WithRetry(context.Background(), client, 3, "sys", "user")
	if err != nil {
		t.Fatalf("WithRetry() error = %v", err)
	}
	if response != "ok" || client.calls != 1 {
		t.Errorf("response = %q after %d calls; want ok after 1", response, client.calls)
	}
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	client := &flakyClient{failures: 10}

	_, err := WithRetry(context.Background(), client, 1, "sys", "user")
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if client.calls != 1 {
		t.Errorf("got %d calls, want exactly the attempt budget", client.calls)
	}
}

func TestWithRetry_CanceledContextStopsRetries(t *testing.T) {
	client := &flakyClient{failures: 10}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(ctx, client, 3, "sys", "user")
	if err == nil {
		t.Fatal("expected error with canceled context")
	}
	if client.calls != 1 {
		t.Errorf("got %d calls, want 1 before the canceled context is observed", client.calls)
	}
}
