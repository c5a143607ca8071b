package handlers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saurishmody-star/nba-scores-app/config"
	"github.com/saurishmody-star/nba-scores-app/services"
)

type Handler struct {
	Cfg    *config.Config
	Scores *services.ScoreboardService
}

func NewHandler(cfg *config.Config, scores *services.ScoreboardService) *Handler {
	return &Handler{
		Cfg:    cfg,
		Scores: scores,
	}
}

// GetScoreboard godoc
func (h *Handler) GetScoreboard(c echo.Context) error {
	date := c.QueryParam("date")

	data, err := h.Scores.Scoreboard(c.Request().Context(), date)
	if err != nil {
		log.Printf("Error fetching scoreboard: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSONBlob(http.StatusOK, data)
}

// GetBoxScore godoc
func (h *Handler) GetBoxScore(c echo.Context) error {
	gameID := c.Param("gameId")

	data, err := h.Scores.BoxScore(c.Request().Context(), gameID)
	if err != nil {
		log.Printf("Error fetching box score: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSONBlob(http.StatusOK, data)
}

// GetHealth godoc
func (h *Handler) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "NBA Scores API Proxy is running",
	})
}
