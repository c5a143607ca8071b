package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/saurishmody-star/nba-scores-app/config"
	"github.com/saurishmody-star/nba-scores-app/models"
	"github.com/saurishmody-star/nba-scores-app/services"
)

func testConfig(cdnURL, statsURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Upstream.CDNBaseURL = cdnURL
	cfg.Upstream.StatsBaseURL = statsURL
	cfg.Upstream.Timeout = 1
	cfg.Cache.TodayTTL = 10
	cfg.Cache.HistoricalTTL = 300
	cfg.Cache.BoxScoreTTL = 15
	return cfg
}

func testHandler(cfg *config.Config) *Handler {
	cache := services.NewCacheService()
	scores := services.NewScoreboardService(cfg, cache, services.NewCDNClient(cfg), services.NewStatsClient(cfg))
	return NewHandler(cfg, scores)
}

func TestGetScoreboard_Today(t *testing.T) {
	payload := `{"scoreboard":{"games":[{"gameId":"001"}]}}`
	calls := 0

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(payload))
	}))
	defer upstream.Close()

	handler := testHandler(testConfig(upstream.URL, ""))
	e := echo.New()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/scoreboard", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler.GetScoreboard(c); err != nil {
			t.Fatalf("GetScoreboard failed: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rec.Code)
		}
		if rec.Body.String() != payload {
			t.Errorf("Expected CDN payload unmodified, got %s", rec.Body.String())
		}
	}

	// Second request must be served from cache
	if calls != 1 {
		t.Errorf("Expected exactly 1 upstream call, got %d", calls)
	}
}

func TestGetScoreboard_Historical(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("GameDate"); got != "12/25/2023" {
			t.Errorf("Expected GameDate 12/25/2023, got %s", got)
		}
		json.NewEncoder(w).Encode(models.StatsResponse{
			ResultSets: []models.ResultSet{
				{Name: "GameHeader", RowSet: [][]any{
					{"2023-12-25T00:00:00", nil, "G1", 3, nil, nil, 11, 22, nil, nil},
				}},
				{Name: "LineScore", RowSet: [][]any{
					statsRow("G1", 11, "LAL", "Los Angeles", "Lakers", 100),
					statsRow("G1", 22, "BOS", "Boston", "Celtics", 95),
				}},
			},
		})
	}))
	defer upstream.Close()

	handler := testHandler(testConfig("", upstream.URL))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/scoreboard?date=2023-12-25", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetScoreboard(c); err != nil {
		t.Fatalf("GetScoreboard failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp models.ScoreboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Scoreboard.Games) != 1 {
		t.Fatalf("Expected 1 game, got %d", len(resp.Scoreboard.Games))
	}
	g := resp.Scoreboard.Games[0]
	if g.GameID != "G1" {
		t.Errorf("Expected gameId G1, got %s", g.GameID)
	}
	if g.HomeTeam.Score != 100 || g.AwayTeam.Score != 95 {
		t.Errorf("Expected scores 100/95, got %d/%d", g.HomeTeam.Score, g.AwayTeam.Score)
	}
	if g.Period != 0 {
		t.Errorf("Expected period 0, got %d", g.Period)
	}
}

func TestGetScoreboard_UpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	handler := testHandler(testConfig(upstream.URL, ""))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/scoreboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetScoreboard(c); err != nil {
		t.Fatalf("GetScoreboard returned error instead of writing 500: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	if body["error"] == "" {
		t.Error("Expected error message in body")
	}
}

func TestGetBoxScore(t *testing.T) {
	payload := `{"game":{"gameId":"0022300500","homeTeam":{},"awayTeam":{}}}`

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/boxscore/boxscore_0022300500.json" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(payload))
	}))
	defer upstream.Close()

	handler := testHandler(testConfig(upstream.URL, ""))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/boxscore/0022300500", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/boxscore/:gameId")
	c.SetParamNames("gameId")
	c.SetParamValues("0022300500")

	if err := handler.GetBoxScore(c); err != nil {
		t.Fatalf("GetBoxScore failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != payload {
		t.Errorf("Expected pass-through body, got %s", rec.Body.String())
	}
}

func TestGetHealth(t *testing.T) {
	handler := testHandler(testConfig("", ""))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetHealth(c); err != nil {
		t.Fatalf("GetHealth failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %s", body["status"])
	}
}

// statsRow pads a LineScore row out to the PTS column.
func statsRow(gameID string, teamID int, tricode, city, name string, pts int) []any {
	row := make([]any, 23)
	row[2] = gameID
	row[3] = teamID
	row[4] = tricode
	row[5] = city
	row[6] = name
	row[22] = pts
	return row
}
