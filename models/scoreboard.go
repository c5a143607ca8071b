package models

// TeamSide is one side of a game in the shape the NBA CDN scoreboard feed
// uses. The historical path fills the same struct so consumers never see
// which upstream a game came from. Fields like Seed/InBonus/Periods are not
// populated from the stats API but must stay in the payload.
type TeamSide struct {
	TeamID            int    `json:"teamId"`
	TeamName          string `json:"teamName"`
	TeamCity          string `json:"teamCity"`
	TeamTricode       string `json:"teamTricode"`
	TeamSlug          string `json:"teamSlug"`
	Wins              int    `json:"wins"`
	Losses            int    `json:"losses"`
	Score             int    `json:"score"`
	Seed              any    `json:"seed"`
	InBonus           any    `json:"inBonus"`
	TimeoutsRemaining int    `json:"timeoutsRemaining"`
	Periods           []any  `json:"periods"`
}

// Game is the unified per-game record served to clients regardless of
// which upstream produced it.
type Game struct {
	GameID      string   `json:"gameId"`
	GameDate    string   `json:"gameDate"`
	GameStatus  int      `json:"gameStatus"`
	GameTimeUTC string   `json:"gameTimeUTC"`
	Period      int      `json:"period"`
	GameClock   string   `json:"gameClock"`
	HomeTeam    TeamSide `json:"homeTeam"`
	AwayTeam    TeamSide `json:"awayTeam"`
}

// Scoreboard is the inner envelope shared with the CDN feed.
type Scoreboard struct {
	Games    []Game `json:"games"`
	GameDate string `json:"gameDate,omitempty"`
}

// ScoreboardResponse is the top-level body for /api/scoreboard.
type ScoreboardResponse struct {
	Scoreboard Scoreboard `json:"scoreboard"`
}
