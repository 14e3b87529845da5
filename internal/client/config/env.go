package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvAPIBaseURL        = "CAREERPILOT_API_BASE_URL"
	EnvAppURL            = "CAREERPILOT_APP_URL"
	EnvTokenStorageKey   = "CAREERPILOT_JWT_STORAGE_KEY"
	EnvTokenBackend      = "CAREERPILOT_TOKEN_BACKEND"
	EnvDatabasePath      = "CAREERPILOT_DB_PATH"
	EnvRedisAddr         = "CAREERPILOT_REDIS_ADDR"
	EnvRequestTimeout    = "CAREERPILOT_REQUEST_TIMEOUT"
	EnvRefreshInterval   = "CAREERPILOT_REFRESH_INTERVAL"
	EnvRefreshWindow     = "CAREERPILOT_REFRESH_WINDOW"
	EnvRequestsPerSecond = "CAREERPILOT_RPS"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
)

// dotenvFile is the optional file read before the process environment.
var dotenvFile = ".env"

// parseEnv overlays Config with environment variables. Values from the .env
// file are used only when the variable is not set in the process
// environment. A missing .env file is not an error; a malformed one, or a
// value that does not parse, panics.
func parseEnv(cfg *Config) {
	file, err := godotenv.Read(dotenvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}
	applyEnv(cfg, lookup)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		*dst = d
	}

	str(EnvAPIBaseURL, &cfg.APIBaseURL)
	str(EnvAppURL, &cfg.AppURL)
	str(EnvTokenStorageKey, &cfg.TokenStorageKey)
	str(EnvTokenBackend, &cfg.TokenBackend)
	str(EnvDatabasePath, &cfg.DatabasePath)
	str(EnvRedisAddr, &cfg.RedisAddr)
	dur(EnvRequestTimeout, &cfg.RequestTimeout)
	dur(EnvRefreshInterval, &cfg.RefreshInterval)
	dur(EnvRefreshWindow, &cfg.RefreshWindow)
	str(EnvLogLevel, &cfg.LogLevel)
	str(EnvLogFormat, &cfg.LogFormat)

	if v, ok := lookup(EnvRequestsPerSecond); ok && v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			panic(err)
		}
		cfg.RequestsPerSecond = rps
	}
}
