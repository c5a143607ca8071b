package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/saurishmody-star/nba-scores-app/config"
	"github.com/saurishmody-star/nba-scores-app/handlers"
	"github.com/saurishmody-star/nba-scores-app/middleware"
	"github.com/saurishmody-star/nba-scores-app/services"
)

func main() {
	// 1. Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Services
	cache := services.NewCacheService()
	cdn := services.NewCDNClient(cfg)
	stats := services.NewStatsClient(cfg)
	scores := services.NewScoreboardService(cfg, cache, cdn, stats)

	// 3. Web Server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.LoggerMiddleware())
	e.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Recovered from panic: %v", r)
					c.Error(fmt.Errorf("internal server error"))
				}
			}()
			return next(c)
		}
	})

	// Handlers
	h := handlers.NewHandler(cfg, scores)

	// Routes
	api := e.Group("/api")
	api.GET("/health", h.GetHealth)
	api.GET("/scoreboard", h.GetScoreboard)
	api.GET("/boxscore/:gameId", h.GetBoxScore)

	// 4. Start Server with Graceful Shutdown
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	go func() {
		log.Printf("NBA API Proxy running on http://%s", serverAddr)
		log.Printf("Scoreboard: http://%s/api/scoreboard", serverAddr)
		log.Printf("With date: http://%s/api/scoreboard?date=YYYY-MM-DD", serverAddr)
		if err := e.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("shutting down the server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Graceful shutdown received...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
	log.Println("Server exited")
}
