package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// BaseURL is the 19hz.info site root. Region listing pages hang off it
	// and the root itself is the master index used for drift detection.
	BaseURL   = "https://19hz.info"
	UserAgent = "hz19-events/1.0 (github.com/pfrederiksen/hz19-events)"
	Timeout   = 30 * time.Second
)

// NetworkError reports a failed page fetch: connection failure, timeout, or
// a non-success response status.
type NetworkError struct {
	URL    string
	Status int   // non-zero when the server responded
	Err    error // underlying transport error, if any
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s: unexpected status code: %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Fetcher retrieves raw listing markup for a URL. Implementations must
// bound each call with a timeout; they must not retry internally — retry is
// the caller's policy (see RetryingFetcher).
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Client is the default Fetcher backed by net/http. Each call issues exactly
// one outbound request; nothing is cached.
type Client struct {
	client    *http.Client
	userAgent string
}

// NewClient creates a Client. Zero values fall back to the package defaults.
func NewClient(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = Timeout
	}
	if userAgent == "" {
		userAgent = UserAgent
	}
	return &Client{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch retrieves the page at url and returns its body as a string. Any
// transport failure or non-2xx status is reported as a *NetworkError.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &NetworkError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{URL: url, Err: err}
	}
	return string(body), nil
}
