// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package units provides the engine's typed scalar arithmetic: HP and
// Energy saturate against a max instead of wrapping or going negative,
// Distance is always centimeters, and the spatial tuples (Point3,
// VectorCM, AABB) fix their bit widths exactly so precision questions
// (truncation on line rasterization, meter-vs-centimeter mixing) have
// one obvious place to live.
//
// Non-Goals:
//   - Unit conversion for anything other than centimeters/meters.
//   - Vector math beyond what grid needs (that lives in gonum's r3
//     package, wired directly by the grid package).
package units
