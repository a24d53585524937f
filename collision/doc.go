// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package collision implements the broadphase contact world between
// creature footprints and volume-condition shapes: two groups,
// creatures (group 1) and condition volumes (group 2), each colliding
// only with the other.
package collision
