// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package combat holds Combat: an initiative-ordered roster, a
// current-actor cursor, and the acting creature's remaining movement
// budget for the turn. Combat references creatures only by id — it
// never owns Creature values; live stats always come from the game's
// creature collection.
package combat
