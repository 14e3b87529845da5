// Package config loads runtime configuration for the CareerPilot CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with a .env file in the working directory as a
//     fallback for variables the process environment does not set.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// # Environment
//
//	CAREERPILOT_API_BASE_URL      API base URL
//	CAREERPILOT_APP_URL           web app origin for checkout redirects
//	CAREERPILOT_JWT_STORAGE_KEY   token storage key
//	CAREERPILOT_TOKEN_BACKEND     sqlite, memory or redis
//	CAREERPILOT_DB_PATH           local database path
//	CAREERPILOT_REDIS_ADDR        redis address
//	CAREERPILOT_REQUEST_TIMEOUT   e.g. "30s"
//	CAREERPILOT_REFRESH_INTERVAL  e.g. "1m"
//	CAREERPILOT_REFRESH_WINDOW    e.g. "5m"
//	CAREERPILOT_RPS               requests per second
//	LOG_LEVEL, LOG_FORMAT
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://api.careerpilot.example/api/v1",
//	  "app_url": "https://app.careerpilot.example",
//	  "token_storage_key": "careerpilot_token",
//	  "token_backend": "sqlite",
//	  "database_path": "/home/me/.config/careerpilot/client.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "request_timeout": "30s",
//	  "refresh_interval": "1m",
//	  "refresh_window": "5m",
//	  "requests_per_second": 5,
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// Malformed values in any source panic; the caller decides whether to
// recover.
package config
