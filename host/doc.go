// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package host is the thin synchronization and observability shell
// around history.App: one mutex per running game serializes commands,
// a one-shot wakeup channel per game lets long-poll waiters park until
// the next successful command, and every command is logged through a
// structured *zap.Logger. None of this belongs to the engine itself —
// Game and App stay pure and synchronous — but every multi-game
// deployment needs it, so it ships alongside the engine rather than
// being left to every caller to reinvent.
package host
