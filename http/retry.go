package http

import (
	"context"
	"time"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

// fetchFunc is the signature of a single fetch attempt.
type fetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithRetry attempts a fetch with exponential backoff. Only transient
// failures (EUNAVAILABLE) are retried; a missing page or invalid URL fails
// immediately.
func fetchWithRetry(ctx context.Context, url string, fetch fetchFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		markup, err := fetch(ctx, url)
		if err == nil {
			return markup, nil
		}
		lastErr = err

		if wikifetch.ErrorCode(err) != wikifetch.EUNAVAILABLE {
			return "", err
		}
		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
