// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package history wraps game.Game with event-sourced persistence: a
// bounded deque of snapshots, each a baseline Game plus the logs
// appended since, and rollback reconstruction that replays a log
// prefix from a chosen snapshot.
package history
