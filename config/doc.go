// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the engine's tunable parameters from a TOML
// file: history retention, segment sizing, and long-poll timing.
package config
