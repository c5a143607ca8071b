package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/saurishmody-star/nba-scores-app/config"
)

const cdnSource = "NBA CDN"

// CDNClient fetches the live-data JSON feed on cdn.nba.com. The CDN rejects
// default client fingerprints, so requests carry browser-mimicking headers.
type CDNClient struct {
	config     *config.Config
	httpClient *http.Client
}

// NewCDNClient creates a new client
func NewCDNClient(cfg *config.Config) *CDNClient {
	return &CDNClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.UpstreamTimeoutDuration(),
		},
	}
}

// fetch performs a GET against the CDN base URL and returns the raw body.
// The CDN payload is served to clients unmodified, so it stays opaque here.
func (c *CDNClient) fetch(ctx context.Context, endpoint string) (json.RawMessage, error) {
	url := c.config.Upstream.CDNBaseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Source: cdnSource, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Source: cdnSource, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Source: cdnSource, Err: err}
	}
	return json.RawMessage(body), nil
}

// TodaysScoreboard fetches the current day's scoreboard feed.
func (c *CDNClient) TodaysScoreboard(ctx context.Context) (json.RawMessage, error) {
	return c.fetch(ctx, "/scoreboard/todaysScoreboard_00.json")
}

// BoxScore fetches the box score feed for one game.
func (c *CDNClient) BoxScore(ctx context.Context, gameID string) (json.RawMessage, error) {
	return c.fetch(ctx, fmt.Sprintf("/boxscore/boxscore_%s.json", gameID))
}
