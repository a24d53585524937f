// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package creature holds the static Creature record, the Class it
// belongs to, and DynamicCreature, a read-only projection combining a
// Creature with its owning game's class table and volume-condition
// overlaps. Creature itself never mutates in place: every change
// produces a new value, so old views stay valid after a write.
package creature
