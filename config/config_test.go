// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFillsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[history]
max_snapshots = 50
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 50, cfg.History.MaxSnapshots)
	require.Equal(t, 100, cfg.History.MaxSegmentLogs) // default preserved
	require.Equal(t, 30*time.Second, cfg.Wakeup.Timeout)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverridesEveryField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[history]
max_snapshots = 10
max_segment_logs = 5

[wakeup]
timeout = "10s"

[logging]
level = "debug"
format = "json"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 10, cfg.History.MaxSnapshots)
	require.Equal(t, 5, cfg.History.MaxSegmentLogs)
	require.Equal(t, 10*time.Second, cfg.Wakeup.Timeout)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
