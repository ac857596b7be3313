// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

// Package config defines the typed configuration surface and its
// layered loader (defaults, optional YAML file, environment).
package config

import (
	"fmt"
	"time"
)

// Config is the full application configuration. Constructors receive
// the sections they need; nothing reads configuration ambiently.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
	API        APIConfig        `koanf:"api"`
	VK         VKConfig         `koanf:"vk"`
	Tables     TablesConfig     `koanf:"tables"`
	OpenRouter OpenRouterConfig `koanf:"openrouter"`
	Analytics  AnalyticsConfig  `koanf:"analytics"`
	Sync       SyncConfig       `koanf:"sync"`
	Notify     NotifyConfig     `koanf:"notify"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// LoggingConfig configures the zerolog facade.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// APIConfig configures pagination and rate limiting.
type APIConfig struct {
	DefaultPageSize int           `koanf:"default_page_size"`
	MaxPageSize     int           `koanf:"max_page_size"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// VKConfig configures the VK wall client. With an empty token the
// client serves deterministic mock posts so the dashboard works
// without credentials.
type VKConfig struct {
	Token             string        `koanf:"token"`
	GroupID           string        `koanf:"group_id"`
	BaseURL           string        `koanf:"base_url"`
	APIVersion        string        `koanf:"api_version"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
}

// TablesConfig configures the MWS Tables client. With an empty token
// the client runs against its in-memory mock workspace.
type TablesConfig struct {
	BaseURL      string        `koanf:"base_url"`
	Token        string        `koanf:"token"`
	WorkspaceID  string        `koanf:"workspace_id"`
	ContentTable string        `koanf:"content_table"`
	PlanTable    string        `koanf:"plan_table"`
	TaskTable    string        `koanf:"task_table"`
	Timeout      time.Duration `koanf:"timeout"`
}

// OpenRouterConfig configures the LLM completion client.
type OpenRouterConfig struct {
	APIKey    string        `koanf:"api_key"`
	BaseURL   string        `koanf:"base_url"`
	Model     string        `koanf:"model"`
	MaxTokens int           `koanf:"max_tokens"`
	Timeout   time.Duration `koanf:"timeout"`
}

// AnalyticsConfig tunes the pattern analyzer.
type AnalyticsConfig struct {
	QuestionMultiplierThreshold float64 `koanf:"question_multiplier_threshold"`
	ShortTextLength             int     `koanf:"short_text_length"`
	TrendWindowDays             int     `koanf:"trend_window_days"`
}

// TrendWindow returns the trend window as a duration.
func (c AnalyticsConfig) TrendWindow() time.Duration {
	return time.Duration(c.TrendWindowDays) * 24 * time.Hour
}

// SyncConfig configures the background jobs.
type SyncConfig struct {
	Enabled          bool          `koanf:"enabled"`
	Interval         time.Duration `koanf:"interval"`
	AnalysisInterval time.Duration `koanf:"analysis_interval"`
	Lookback         time.Duration `koanf:"lookback"`
	BatchSize        int           `koanf:"batch_size"`
}

// NotifyConfig configures the notification store.
type NotifyConfig struct {
	Enabled   bool `koanf:"enabled"`
	MaxStored int  `koanf:"max_stored"`
}

// Validate checks cross-field constraints the type system cannot.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not a known level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q must be json or console", c.Logging.Format)
	}
	if c.API.DefaultPageSize < 1 || c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("api.default_page_size %d must be in [1, %d]", c.API.DefaultPageSize, c.API.MaxPageSize)
	}
	if c.Sync.Enabled && c.Sync.Interval < time.Minute {
		return fmt.Errorf("sync.interval %v is below the one minute floor", c.Sync.Interval)
	}
	if c.Analytics.QuestionMultiplierThreshold <= 0 {
		return fmt.Errorf("analytics.question_multiplier_threshold must be positive")
	}
	return nil
}
