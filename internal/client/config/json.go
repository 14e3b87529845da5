package config

import (
	"encoding/json"
	"os"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/flagx"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration so they can be strings like "30s" or integer nanoseconds.
// Pointer fields distinguish an explicit zero from an absent key.
type JsonConfig struct {
	APIBaseURL        string          `json:"api_base_url"`
	AppURL            string          `json:"app_url"`
	TokenStorageKey   string          `json:"token_storage_key"`
	TokenBackend      string          `json:"token_backend"`
	DatabasePath      string          `json:"database_path"`
	RedisAddr         string          `json:"redis_addr"`
	RequestTimeout    *timex.Duration `json:"request_timeout"`
	RefreshInterval   *timex.Duration `json:"refresh_interval"`
	RefreshWindow     *timex.Duration `json:"refresh_window"`
	RequestsPerSecond *float64        `json:"requests_per_second"`
	LogLevel          string          `json:"log_level"`
	LogFormat         string          `json:"log_format"`
}

// parseJson overlays Config with values from the JSON file named by -c or
// -config. Keys missing from the file leave the current values alone. It
// panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	jc.apply(cfg)
}

func (jc JsonConfig) apply(cfg *Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.APIBaseURL, jc.APIBaseURL)
	set(&cfg.AppURL, jc.AppURL)
	set(&cfg.TokenStorageKey, jc.TokenStorageKey)
	set(&cfg.TokenBackend, jc.TokenBackend)
	set(&cfg.DatabasePath, jc.DatabasePath)
	set(&cfg.RedisAddr, jc.RedisAddr)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.LogFormat, jc.LogFormat)

	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RefreshInterval != nil {
		cfg.RefreshInterval = jc.RefreshInterval.Duration
	}
	if jc.RefreshWindow != nil {
		cfg.RefreshWindow = jc.RefreshWindow.Duration
	}
	if jc.RequestsPerSecond != nil {
		cfg.RequestsPerSecond = *jc.RequestsPerSecond
	}
}
