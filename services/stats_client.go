package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/saurishmody-star/nba-scores-app/config"
	"github.com/saurishmody-star/nba-scores-app/models"
)

const statsSource = "NBA Stats"

// StatsClient queries stats.nba.com, the only source that accepts an
// arbitrary game date. This upstream enforces browser-origin checks, so the
// header set is wider than the CDN's.
type StatsClient struct {
	config     *config.Config
	httpClient *http.Client
}

// NewStatsClient creates a new client
func NewStatsClient(cfg *config.Config) *StatsClient {
	return &StatsClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.UpstreamTimeoutDuration(),
		},
	}
}

// ScoreboardByDate fetches /scoreboardv2 for one game date. gameDate must
// already be in the MM/DD/YYYY form the stats API expects.
func (c *StatsClient) ScoreboardByDate(ctx context.Context, gameDate string) (*models.StatsResponse, error) {
	params := url.Values{}
	params.Set("GameDate", gameDate)
	params.Set("LeagueID", "00")
	params.Set("DayOffset", "0")

	reqURL := fmt.Sprintf("%s/scoreboardv2?%s", c.config.Upstream.StatsBaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", "https://www.nba.com/")
	req.Header.Set("Origin", "https://www.nba.com")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Source: statsSource, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Source: statsSource, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var statsResp models.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&statsResp); err != nil {
		return nil, fmt.Errorf("failed to decode stats response: %w", err)
	}
	return &statsResp, nil
}
