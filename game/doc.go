// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package game is the engine's aggregate root: Game owns every
// creature, scene, class, ability, and player, applies GameLog values
// to produce new Game values, and validates GameCommand values into
// logs. Game is a pure value — apply_log and perform_unchecked both
// return fresh Games; nothing here performs I/O, and replay (ApplyLog)
// consults no RNG.
//
// Command handling is the only place dice are rolled or ids are
// minted; replaying a recorded log sequence is deterministic and
// total, since every value a log needs is already baked into it.
package game
