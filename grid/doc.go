// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package grid implements the tile-based 3D spatial engine: distance
// metrics, neighbor generation with corner-cutting rules, A*-multi
// pathfinding against several goal predicates at once, accessibility
// queries, and volumetric shape placement.
//
// Positions live in units.Point3 (whole meters); everything here is
// built on top of that plus a Terrain set of open points. Continuous
// vector math (line_through_point's normalize-scale-truncate) uses
// gonum.org/v1/gonum/spatial/r3 rather than hand-rolled float ops.
package grid
