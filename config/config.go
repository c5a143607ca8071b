package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `json:"server"`
	Upstream UpstreamConfig `json:"upstream"`
	Cache    CacheConfig    `json:"cache"`
}

type ServerConfig struct {
	Port           int      `json:"port"`
	Host           string   `json:"host"`
	AllowedOrigins []string `json:"allowed_origins"`
}

type UpstreamConfig struct {
	CDNBaseURL   string `json:"cdn_base_url"`
	StatsBaseURL string `json:"stats_base_url"`
	Timeout      int    `json:"timeout_seconds"`
}

type CacheConfig struct {
	TodayTTL      int `json:"today_ttl_seconds"`
	HistoricalTTL int `json:"historical_ttl_seconds"`
	BoxScoreTTL   int `json:"boxscore_ttl_seconds"`
}

// LoadConfig loads configuration from Defaults -> File -> Env -> Flags
func LoadConfig() (*Config, error) {
	// 1. Initialize with Defaults
	cfg := &Config{
		Server: ServerConfig{
			Port: 3001,
			Host: "0.0.0.0",
			AllowedOrigins: []string{
				"http://localhost:5173",
				"http://localhost:5174",
			},
		},
		Upstream: UpstreamConfig{
			CDNBaseURL:   "https://cdn.nba.com/static/json/liveData",
			StatsBaseURL: "https://stats.nba.com/stats",
			Timeout:      10,
		},
		Cache: CacheConfig{
			TodayTTL:      10,  // live scores change quickly
			HistoricalTTL: 300, // a fixed past date does not change
			BoxScoreTTL:   15,
		},
	}

	// 2. Load from Config File
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config/config.json"
	}

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.Open(configPath)
		if err == nil {
			defer file.Close()
			decoder := json.NewDecoder(file)
			if err := decoder.Decode(cfg); err != nil {
				fmt.Printf("Warning: Failed to decode config file: %v\n", err)
			}
		}
	}

	// 3. Load from Environment Variables (Override)
	loadEnv(cfg)

	// 4. Load from Flags (Override)
	// Use a custom FlagSet to avoid polluting the global flag set and allow re-parsing in tests
	fs := flag.NewFlagSet("config", flag.ContinueOnError)

	var serverPort int
	var serverHost string

	fs.IntVar(&serverPort, "port", 0, "Server port")
	fs.StringVar(&serverHost, "host", "", "Server host")

	_ = fs.Parse(os.Args[1:])

	if isFlagPassed(fs, "port") {
		cfg.Server.Port = serverPort
	}
	if isFlagPassed(fs, "host") {
		cfg.Server.Host = serverHost
	}

	return cfg, nil
}

// Helper to check if a flag was actually passed
func isFlagPassed(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func loadEnv(cfg *Config) {
	// Server
	if val := os.Getenv("PORT"); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.Server.Port = p
		}
	}
	if val := os.Getenv("SERVER_HOST"); val != "" {
		cfg.Server.Host = val
	}
	if val := os.Getenv("ALLOWED_ORIGINS"); val != "" {
		parts := strings.Split(val, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		cfg.Server.AllowedOrigins = parts
	}

	// Upstream
	if val := os.Getenv("NBA_CDN_BASE"); val != "" {
		cfg.Upstream.CDNBaseURL = val
	}
	if val := os.Getenv("NBA_STATS_BASE"); val != "" {
		cfg.Upstream.StatsBaseURL = val
	}
	if val := os.Getenv("UPSTREAM_TIMEOUT"); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.Upstream.Timeout = p
		}
	}

	// Cache
	if val := os.Getenv("CACHE_TTL_TODAY"); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.Cache.TodayTTL = p
		}
	}
	if val := os.Getenv("CACHE_TTL_HISTORICAL"); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.Cache.HistoricalTTL = p
		}
	}
	if val := os.Getenv("CACHE_TTL_BOXSCORE"); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.Cache.BoxScoreTTL = p
		}
	}
}

// Helper methods to get durations
func (c *Config) UpstreamTimeoutDuration() time.Duration {
	return time.Duration(c.Upstream.Timeout) * time.Second
}

func (c *Config) TodayTTLDuration() time.Duration {
	return time.Duration(c.Cache.TodayTTL) * time.Second
}

func (c *Config) HistoricalTTLDuration() time.Duration {
	return time.Duration(c.Cache.HistoricalTTL) * time.Second
}

func (c *Config) BoxScoreTTLDuration() time.Duration {
	return time.Duration(c.Cache.BoxScoreTTL) * time.Second
}
