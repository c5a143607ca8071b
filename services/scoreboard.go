package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/saurishmody-star/nba-scores-app/config"
)

// ScoreboardService picks the upstream source per request, normalizes the
// historical path through the transformer, and fronts both with the cache.
// The singleflight group collapses concurrent misses on one key into a
// single upstream call.
type ScoreboardService struct {
	cfg   *config.Config
	cache *CacheService
	cdn   *CDNClient
	stats *StatsClient

	flight singleflight.Group
}

func NewScoreboardService(cfg *config.Config, cache *CacheService, cdn *CDNClient, stats *StatsClient) *ScoreboardService {
	return &ScoreboardService{
		cfg:   cfg,
		cache: cache,
		cdn:   cdn,
		stats: stats,
	}
}

// Scoreboard returns the games for the given date, or today's games when
// date is empty. date, when present, is YYYY-MM-DD from the query string.
func (s *ScoreboardService) Scoreboard(ctx context.Context, date string) (json.RawMessage, error) {
	identifier := date
	if identifier == "" {
		identifier = "today"
	}
	key := CacheKey("scoreboard", identifier)

	if cached, ok := s.cache.Get(key); ok {
		log.Printf("Cache HIT: %s", key)
		return cached.(json.RawMessage), nil
	}
	log.Printf("Cache MISS: %s - fetching from NBA API", key)

	data, err, _ := s.flight.Do(key, func() (any, error) {
		if date == "" {
			return s.fetchToday(ctx, key)
		}
		return s.fetchHistorical(ctx, key, date)
	})
	if err != nil {
		return nil, err
	}
	return data.(json.RawMessage), nil
}

// fetchToday serves the CDN feed unmodified with the short live-update TTL.
func (s *ScoreboardService) fetchToday(ctx context.Context, key string) (json.RawMessage, error) {
	data, err := s.cdn.TodaysScoreboard(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, data, s.cfg.TodayTTLDuration())
	return data, nil
}

// fetchHistorical queries the stats API, reshapes it to the CDN envelope,
// and caches the result for much longer: a fixed date's games don't change.
func (s *ScoreboardService) fetchHistorical(ctx context.Context, key, date string) (json.RawMessage, error) {
	statsData, err := s.stats.ScoreboardByDate(ctx, FormatGameDate(date))
	if err != nil {
		return nil, err
	}

	transformed := TransformStatsResponse(statsData)
	data, err := json.Marshal(transformed)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scoreboard: %w", err)
	}

	s.cache.Set(key, json.RawMessage(data), s.cfg.HistoricalTTLDuration())
	return json.RawMessage(data), nil
}

// BoxScore returns the CDN box score for one game, cached briefly because
// live games update roughly every 15 seconds.
func (s *ScoreboardService) BoxScore(ctx context.Context, gameID string) (json.RawMessage, error) {
	key := CacheKey("boxscore", gameID)

	if cached, ok := s.cache.Get(key); ok {
		log.Printf("Cache HIT: %s", key)
		return cached.(json.RawMessage), nil
	}
	log.Printf("Cache MISS: %s - fetching from NBA API", key)

	data, err, _ := s.flight.Do(key, func() (any, error) {
		raw, err := s.cdn.BoxScore(ctx, gameID)
		if err != nil {
			return nil, err
		}
		s.cache.Set(key, raw, s.cfg.BoxScoreTTLDuration())
		return raw, nil
	})
	if err != nil {
		return nil, err
	}
	return data.(json.RawMessage), nil
}

// FormatGameDate rewrites YYYY-MM-DD to the MM/DD/YYYY form the stats API
// expects. Inputs that don't split into three parts pass through unchanged
// and surface as an upstream error, matching how the proxy always behaved.
func FormatGameDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return fmt.Sprintf("%s/%s/%s", parts[1], parts[2], parts[0])
}
