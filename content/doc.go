// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content loads static campaign definitions — abilities and
// classes — from YAML authoring files into the engine's runtime
// types. It is the boundary between however a campaign is authored
// and the id-indexed, tagged-union shapes game.Game actually consumes:
// every load mints fresh ids, so the same YAML file produces distinct
// Ability/Class instances each time it's loaded into a new Game.
package content
