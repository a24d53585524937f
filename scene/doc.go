// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scene holds Scene: a spatial map of open terrain, creature
// placements, volume conditions, annotations, and attribute checks.
// Scene never embeds Creature values — only ids — so creature state
// always resolves against the game's authoritative collection.
package scene
