package config

import (
	"flag"
	"os"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/flagx"
)

var knownFlags = []string{
	"-a", "-app-url", "-k", "-s", "-d", "-redis", "-t", "-r", "-w", "-rps", "-log-level", "-log-format",
}

// parseFlags populates Config fields from command-line flags.
//
//	-a string      API base URL
//	-app-url       web app origin used for checkout redirects
//	-k string      token storage key
//	-s string      token store backend: sqlite, memory or redis
//	-d string      path of the local SQLite database
//	-redis string  Redis address for the redis backend
//	-t duration    per-request timeout, 0 disables it
//	-r duration    background token refresh check interval, 0 disables it
//	-w duration    refresh tokens expiring within this window
//	-rps float     client-side request rate limit, 0 disables it
//	-log-level     debug, info, warn or error
//	-log-format    text or json
//
// os.Args is filtered with flagx.FilterArgs so that flags owned by other
// parsers (-c) do not interfere. It panics on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.AppURL, "app-url", cfg.AppURL, "web app origin")
	fs.StringVar(&cfg.TokenStorageKey, "k", cfg.TokenStorageKey, "token storage key")
	fs.StringVar(&cfg.TokenBackend, "s", cfg.TokenBackend, "token store backend (sqlite, memory, redis)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "redis address")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.DurationVar(&cfg.RefreshInterval, "r", cfg.RefreshInterval, "token refresh check interval")
	fs.DurationVar(&cfg.RefreshWindow, "w", cfg.RefreshWindow, "token refresh window")
	fs.Float64Var(&cfg.RequestsPerSecond, "rps", cfg.RequestsPerSecond, "requests per second limit")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text, json)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
