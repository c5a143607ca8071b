package services

import (
	"github.com/saurishmody-star/nba-scores-app/models"
)

// Column positions within the stats API result sets. The API does not
// document row order at the row level; these indices are the de-facto
// contract observed from /scoreboardv2 responses. Keep them in one place.
const (
	// GameHeader result set (resultSets[0])
	ghGameDate      = 0 // GAME_DATE_EST
	ghGameID        = 2 // GAME_ID
	ghGameStatusID  = 3 // GAME_STATUS_ID
	ghHomeTeamID    = 6 // HOME_TEAM_ID
	ghVisitorTeamID = 7 // VISITOR_TEAM_ID
	ghLivePeriod    = 9 // LIVE_PERIOD

	// LineScore result set (resultSets[1])
	lsGameID      = 2  // GAME_ID
	lsTeamID      = 3  // TEAM_ID
	lsTeamTricode = 4  // TEAM_ABBREVIATION
	lsTeamCity    = 5  // TEAM_CITY_NAME
	lsTeamName    = 6  // TEAM_NAME
	lsPoints      = 22 // PTS
)

// TransformStatsResponse reshapes a /scoreboardv2 payload into the envelope
// the CDN feed produces natively, so the two source paths are
// indistinguishable to clients.
//
// A header row whose teams have no matching line-score rows is dropped
// rather than emitted half-filled; missing scalar values default to zero or
// empty string so the TeamSide shape is always complete.
func TransformStatsResponse(statsData *models.StatsResponse) models.ScoreboardResponse {
	empty := models.ScoreboardResponse{Scoreboard: models.Scoreboard{Games: []models.Game{}}}

	if statsData == nil || len(statsData.ResultSets) < 2 {
		return empty
	}

	gameHeader := statsData.ResultSets[0]
	lineScore := statsData.ResultSets[1]

	if len(gameHeader.RowSet) == 0 {
		return empty
	}

	games := make([]models.Game, 0, len(gameHeader.RowSet))

	for _, row := range gameHeader.RowSet {
		gameID := cellString(row, ghGameID)
		homeTeamID := cellInt(row, ghHomeTeamID)
		visitorTeamID := cellInt(row, ghVisitorTeamID)

		homeRow := findLineScore(lineScore.RowSet, gameID, homeTeamID)
		visitorRow := findLineScore(lineScore.RowSet, gameID, visitorTeamID)
		if homeRow == nil || visitorRow == nil {
			// Skip if we can't find the scores
			continue
		}

		gameDate := cellString(row, ghGameDate)

		games = append(games, models.Game{
			GameID:      gameID,
			GameDate:    gameDate,
			GameStatus:  cellInt(row, ghGameStatusID),
			GameTimeUTC: gameDate,
			Period:      cellInt(row, ghLivePeriod),
			GameClock:   "",
			HomeTeam:    teamSide(homeRow, homeTeamID),
			AwayTeam:    teamSide(visitorRow, visitorTeamID),
		})
	}

	return models.ScoreboardResponse{
		Scoreboard: models.Scoreboard{
			Games:    games,
			GameDate: cellString(gameHeader.RowSet[0], ghGameDate),
		},
	}
}

// findLineScore joins on (game id, team id); first match wins.
func findLineScore(rows [][]any, gameID string, teamID int) []any {
	for _, row := range rows {
		if cellString(row, lsGameID) == gameID && cellInt(row, lsTeamID) == teamID {
			return row
		}
	}
	return nil
}

func teamSide(row []any, teamID int) models.TeamSide {
	return models.TeamSide{
		TeamID:            teamID,
		TeamName:          cellString(row, lsTeamName),
		TeamCity:          cellString(row, lsTeamCity),
		TeamTricode:       cellString(row, lsTeamTricode),
		TeamSlug:          "",
		Wins:              0,
		Losses:            0,
		Score:             cellInt(row, lsPoints),
		Seed:              nil,
		InBonus:           nil,
		TimeoutsRemaining: 0,
		Periods:           []any{},
	}
}

// cellString reads a string cell, defaulting to "" for short rows, nulls,
// and non-string values.
func cellString(row []any, idx int) string {
	if idx >= len(row) {
		return ""
	}
	s, _ := row[idx].(string)
	return s
}

// cellInt reads a numeric cell. JSON numbers decode as float64; anything
// absent or non-numeric becomes 0.
func cellInt(row []any, idx int) int {
	if idx >= len(row) {
		return 0
	}
	switch v := row[idx].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
