// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable the host wrapper needs to run the
// engine: how much history to retain, how long a snapshot segment may
// grow before rolling, how long a long-poll waiter parks, and how the
// host's structured logger is configured.
type Config struct {
	History HistoryConfig `toml:"history"`
	Wakeup  WakeupConfig  `toml:"wakeup"`
	Logging LoggingConfig `toml:"logging"`
}

// LoggingConfig tunes the host's *zap.Logger.
type LoggingConfig struct {
	// Level is a zapcore.Level name: "debug", "info", "warn", "error".
	Level string `toml:"level"`
	// Format is "json" for production or "console" for development.
	Format string `toml:"format"`
}

// HistoryConfig carries snapshot-deque bounds. history.App does not
// read it: App uses its own fixed limits (1000 snapshots, 100 logs per
// segment), which equal the defaults below.
type HistoryConfig struct {
	MaxSnapshots   int `toml:"max_snapshots"`
	MaxSegmentLogs int `toml:"max_segment_logs"`
}

// WakeupConfig tunes the long-poll wake-up side channel.
type WakeupConfig struct {
	Timeout time.Duration `toml:"timeout"`
}

// Load reads and parses the TOML file at path, filling in defaults()
// first so a partial file only overrides what it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		History: HistoryConfig{
			MaxSnapshots:   1000,
			MaxSegmentLogs: 100,
		},
		Wakeup: WakeupConfig{
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
