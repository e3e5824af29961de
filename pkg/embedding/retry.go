package embedding

import (
	"context"
	"math"
	"time"
)

// RetryClient wraps a Client with exponential backoff. Embedding APIs
// rate-limit bursts during ingest; retrying here keeps callers oblivious.
type RetryClient struct {
	inner      Client
	maxRetries int
	baseDelay  time.Duration
}

func WithRetry(inner Client) *RetryClient {
	return &RetryClient{
		inner:      inner,
		maxRetries: 5,
		baseDelay:  100 * time.Millisecond,
	}
}

func (c *RetryClient) GetEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		vecs, err := c.inner.GetEmbeddings(ctx, texts)
		if err == nil {
			return vecs, nil
		}
		lastErr = err

		// Don't wait after the last attempt
		if attempt < c.maxRetries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.backoffDelay(attempt)):
			}
		}
	}

	return nil, lastErr
}

func (c *RetryClient) backoffDelay(attempt int) time.Duration {
	delay := float64(c.baseDelay) * math.Pow(2, float64(attempt))

	// Add up to 25% jitter to avoid thundering herd
	jitter := delay * 0.25 * (0.5 - (float64(time.Now().UnixNano()%1000) / 1000))

	return time.Duration(delay + jitter)
}
