package scraper

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryingFetcher wraps a Fetcher with exponential backoff on transient
// failures. The base Fetcher never retries on its own; this decorator is the
// opt-in outer policy layer and is only wired in by the CLI.
type RetryingFetcher struct {
	base            Fetcher
	maxRetries      uint64
	initialInterval time.Duration
}

// NewRetryingFetcher wraps base so each Fetch is attempted up to
// maxRetries additional times after a transient failure.
func NewRetryingFetcher(base Fetcher, maxRetries int) *RetryingFetcher {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &RetryingFetcher{
		base:            base,
		maxRetries:      uint64(maxRetries),
		initialInterval: backoff.DefaultInitialInterval,
	}
}

// Fetch retries the wrapped fetch on transient errors. 4xx statuses are
// permanent: the page is missing or we're blocked, and hammering the site
// won't change that.
func (f *RetryingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var markup string

	op := func() error {
		var err error
		markup, err = f.base.Fetch(ctx, url)
		if err == nil {
			return nil
		}
		var netErr *NetworkError
		if errors.As(err, &netErr) && netErr.Status >= 400 && netErr.Status < 500 {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = f.initialInterval
	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(policy, f.maxRetries), ctx)); err != nil {
		return "", err
	}
	return markup, nil
}
