// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file search order; the first
// file found wins.
var DefaultConfigPaths = []string{
	"pulseboard.yaml",
	"pulseboard.yml",
	"/etc/pulseboard/config.yaml",
	"/etc/pulseboard/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "PULSEBOARD_CONFIG"

// defaultConfig returns the built-in defaults. They are applied
// first, then overridden by the config file and environment.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            4747,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		VK: VKConfig{
			Token:             "",
			GroupID:           "",
			BaseURL:           "https://api.vk.com/method",
			APIVersion:        "5.199",
			Timeout:           15 * time.Second,
			RequestsPerSecond: 3, // VK community token ceiling
		},
		Tables: TablesConfig{
			BaseURL:      "",
			Token:        "",
			WorkspaceID:  "",
			ContentTable: "content",
			PlanTable:    "publication_plan",
			TaskTable:    "plan_tasks",
			Timeout:      15 * time.Second,
		},
		OpenRouter: OpenRouterConfig{
			APIKey:    "",
			BaseURL:   "https://openrouter.ai/api/v1",
			Model:     "deepseek/deepseek-chat",
			MaxTokens: 1000,
			Timeout:   30 * time.Second,
		},
		Analytics: AnalyticsConfig{
			QuestionMultiplierThreshold: 1.5,
			ShortTextLength:             100,
			TrendWindowDays:             7,
		},
		Sync: SyncConfig{
			Enabled:          true,
			Interval:         30 * time.Minute,
			AnalysisInterval: 24 * time.Hour,
			Lookback:         30 * 24 * time.Hour,
			BatchSize:        100,
		},
		Notify: NotifyConfig{
			Enabled:   true,
			MaxStored: 100,
		},
	}
}

// Load builds the configuration from layered sources:
//  1. built-in defaults
//  2. optional YAML config file
//  3. environment variables (highest priority)
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are the paths parsed from comma-separated env
// strings into slices.
var sliceConfigPaths = []string{
	"api.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to config paths.
// Unknown variables are dropped rather than guessed, so unrelated
// environment noise cannot override configuration.
//
// Examples:
//   - VK_ACCESS_TOKEN -> vk.token
//   - MWS_API_URL -> tables.base_url
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Server
		"http_host":    "server.host",
		"http_port":    "server.port",
		"http_timeout": "server.timeout",
		"environment":  "server.environment",

		// Logging
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",

		// API
		"api_rate_limit":        "api.rate_limit_reqs",
		"api_rate_limit_window": "api.rate_limit_window",
		"cors_origins":          "api.cors_origins",

		// VK
		"vk_access_token": "vk.token",
		"vk_group_id":     "vk.group_id",
		"vk_api_url":      "vk.base_url",
		"vk_api_version":  "vk.api_version",
		"vk_timeout":      "vk.timeout",
		"vk_rps":          "vk.requests_per_second",

		// MWS Tables
		"mws_api_url":       "tables.base_url",
		"mws_api_key":       "tables.token",
		"mws_workspace_id":  "tables.workspace_id",
		"mws_content_table": "tables.content_table",
		"mws_plan_table":    "tables.plan_table",
		"mws_task_table":    "tables.task_table",
		"mws_timeout":       "tables.timeout",

		// OpenRouter
		"openrouter_api_key":    "openrouter.api_key",
		"openrouter_base_url":   "openrouter.base_url",
		"openrouter_model":      "openrouter.model",
		"openrouter_max_tokens": "openrouter.max_tokens",
		"openrouter_timeout":    "openrouter.timeout",

		// Analytics
		"analytics_question_threshold": "analytics.question_multiplier_threshold",
		"analytics_short_text_length":  "analytics.short_text_length",
		"analytics_trend_window_days":  "analytics.trend_window_days",

		// Sync jobs
		"sync_enabled":           "sync.enabled",
		"sync_interval":          "sync.interval",
		"sync_analysis_interval": "sync.analysis_interval",
		"sync_lookback":          "sync.lookback",
		"sync_batch_size":        "sync.batch_size",

		// Notifications
		"notify_enabled":    "notify.enabled",
		"notify_max_stored": "notify.max_stored",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return "" // drop unmapped variables
}
