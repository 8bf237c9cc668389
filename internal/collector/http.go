package collector

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/friendsofgo/errors"

	pkgLog "insights-srv/pkg/log"
)

// errRateLimited marks a 429 response so the caller retries once after the
// suggested wait.
var errRateLimited = errors.New("rate limited")

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// fetchWithRateLimit issues the built request and, when the platform answers
// 429, retries exactly once after a bounded wait. Anything else is returned
// as-is.
func fetchWithRateLimit(ctx context.Context, l pkgLog.Logger, platform string, client *http.Client, build func() (*http.Request, error)) ([]byte, error) {
	body, wait, err := doOnce(client, build)
	if !errors.Is(err, errRateLimited) {
		return body, err
	}

	l.Warnf(ctx, "internal.collector.%s: rate limit hit, waiting %s before retry", platform, wait)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(wait):
	}

	body, _, err = doOnce(client, build)
	return body, err
}

func doOnce(client *http.Client, build func() (*http.Request, error)) ([]byte, time.Duration, error) {
	req, err := build()
	if err != nil {
		return nil, 0, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	switch resp.StatusCode {
	case http.StatusOK:
		return body, 0, nil
	case http.StatusTooManyRequests:
		return nil, rateLimitWait(resp.Header), errRateLimited
	default:
		return nil, 0, errors.Errorf("unexpected status %d: %s", resp.StatusCode, truncateBody(body))
	}
}

// rateLimitWait honors Retry-After when present, capped at MaxRateLimitWait.
func rateLimitWait(h http.Header) time.Duration {
	wait := MaxRateLimitWait
	if ra := h.Get("Retry-After"); ra != "" {
		if secs, err := strconv.Atoi(ra); err == nil && secs >= 0 {
			wait = time.Duration(secs) * time.Second
		}
	}
	if wait > MaxRateLimitWait {
		wait = MaxRateLimitWait
	}
	return wait
}

func clampLimit(limit, min, max int) int {
	if limit <= 0 {
		limit = DefaultFetchLimit
	}
	switch {
	case limit < min:
		return min
	case limit > max:
		return max
	}
	return limit
}

func truncateBody(body []byte) string {
	const max = 200
	if len(body) <= max {
		return string(body)
	}
	return string(body[:max]) + "..."
}
