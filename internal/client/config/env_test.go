package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnv(t *testing.T) {
	vars := map[string]string{
		EnvAPIBaseURL:        "https://api.example/api/v1",
		EnvAppURL:            "https://app.example",
		EnvTokenStorageKey:   "k",
		EnvTokenBackend:      "redis",
		EnvDatabasePath:      "/tmp/x.db",
		EnvRedisAddr:         "redis:6379",
		EnvRequestTimeout:    "0s",
		EnvRefreshInterval:   "2m",
		EnvRefreshWindow:     "30s",
		EnvRequestsPerSecond: "2.5",
		EnvLogLevel:          "debug",
		EnvLogFormat:         "json",
	}
	lookup := func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}

	var cfg Config
	cfg.LoadDefaults()
	applyEnv(&cfg, lookup)

	want := Config{
		APIBaseURL:        "https://api.example/api/v1",
		AppURL:            "https://app.example",
		TokenStorageKey:   "k",
		TokenBackend:      BackendRedis,
		DatabasePath:      "/tmp/x.db",
		RedisAddr:         "redis:6379",
		RequestTimeout:    0,
		RefreshInterval:   2 * time.Minute,
		RefreshWindow:     30 * time.Second,
		RequestsPerSecond: 2.5,
		LogLevel:          "debug",
		LogFormat:         "json",
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestApplyEnv_EmptyValuesIgnored(t *testing.T) {
	lookup := func(k string) (string, bool) { return "", true }

	var cfg, want Config
	cfg.LoadDefaults()
	want.LoadDefaults()
	applyEnv(&cfg, lookup)

	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestApplyEnv_BadValuesPanic(t *testing.T) {
	for _, key := range []string{EnvRequestTimeout, EnvRequestsPerSecond} {
		t.Run(key, func(t *testing.T) {
			lookup := func(k string) (string, bool) {
				if k == key {
					return "abc", true
				}
				return "", false
			}
			var cfg Config
			require.Panics(t, func() { applyEnv(&cfg, lookup) })
		})
	}
}

func TestParseEnv_DotenvFallback(t *testing.T) {
	orig := dotenvFile
	t.Cleanup(func() { dotenvFile = orig })

	dotenvFile = filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenvFile, []byte(
		"CAREERPILOT_REDIS_ADDR=from-file:6379\nCAREERPILOT_JWT_STORAGE_KEY=file_key\n"), 0o600))
	t.Setenv(EnvTokenStorageKey, "process_key")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "from-file:6379", cfg.RedisAddr)
	assert.Equal(t, "process_key", cfg.TokenStorageKey, "process environment wins over .env")
}

func TestParseEnv_MissingDotenv(t *testing.T) {
	orig := dotenvFile
	t.Cleanup(func() { dotenvFile = orig })
	dotenvFile = filepath.Join(t.TempDir(), "nope.env")

	var cfg Config
	require.NotPanics(t, func() { parseEnv(&cfg) })
}
