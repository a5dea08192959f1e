// Package riot provides a minimal client for the Riot match-v5 API.
package riot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrRateLimited marks a fetch rejected by the upstream rate limit.
	// Callers may retry after backing off; the client itself never does.
	ErrRateLimited = errors.New("riot: rate limited")
	// ErrUnavailable marks any other transport or status failure.
	ErrUnavailable = errors.New("riot: unavailable")
)

// Client is a minimal Riot match-v5 API client for one routing region.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient returns a Riot API client authenticated with the given API
// key, targeting the given routing region (e.g. "europe", "americas").
func NewClient(apiKey, region string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: fmt.Sprintf("https://%s.api.riotgames.com", region),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// MatchTelemetry fetches the raw telemetry document for one match. The
// body is returned undecoded; normalization is the caller's concern.
func (c *Client) MatchTelemetry(ctx context.Context, matchID string) ([]byte, error) {
	url := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.baseURL, matchID)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: match %s: %v", ErrUnavailable, matchID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: match %s", ErrRateLimited, matchID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: match %s: HTTP %d", ErrUnavailable, matchID, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: match %s: read body: %v", ErrUnavailable, matchID, err)
	}
	return body, nil
}
