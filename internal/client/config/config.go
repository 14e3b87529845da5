package config

import (
	"os"
	"path/filepath"
	"time"
)

// Token store backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds runtime settings for the CareerPilot CLI.
//
// AppURL is the web app origin that checkout redirects back to.
// RequestTimeout of zero disables the per-request deadline. RefreshInterval
// of zero disables the background token refresher. RequestsPerSecond of
// zero leaves requests unthrottled.
type Config struct {
	APIBaseURL        string
	AppURL            string
	TokenStorageKey   string
	TokenBackend      string
	DatabasePath      string
	RedisAddr         string
	RequestTimeout    time.Duration
	RefreshInterval   time.Duration
	RefreshWindow     time.Duration
	RequestsPerSecond float64
	LogLevel          string
	LogFormat         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api/v1"
	c.AppURL = "http://localhost:3000"
	c.TokenStorageKey = "careerpilot_token"
	c.TokenBackend = BackendSQLite
	c.DatabasePath = defaultDatabasePath()
	c.RedisAddr = "127.0.0.1:6379"
	c.RequestTimeout = 30 * time.Second
	c.RefreshInterval = time.Minute
	c.RefreshWindow = 5 * time.Minute
	c.RequestsPerSecond = 0
	c.LogLevel = "info"
	c.LogFormat = "text"
}

func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "careerpilot.db"
	}
	return filepath.Join(dir, "careerpilot", "client.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and a .env file), JSON (if present) and command-line
// flags (if present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
