// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package grid

import "github.com/ironmoor/tactics/units"

// Neighbor is a candidate step out of Neighbors: the point reached and
// the cost of the step.
type Neighbor struct {
	Point units.Point3
	Cost  units.Distance
}

var planarOffsets = [8][2]int16{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Neighbors enumerates the up to 8 planar neighbors of pt at z=pt.z.
// A diagonal step is permitted only if both orthogonal neighbors it
// would cut across are open (no corner-cutting through solid
// terrain). A neighbor is only yielded if volume's footprint fits
// entirely on open terrain there.
func Neighbors(m Metric, t Terrain, volume units.AABB, pt units.Point3) []Neighbor {
	out := make([]Neighbor, 0, 8)
	for _, off := range planarOffsets {
		dx, dy := off[0], off[1]
		diagonal := dx != 0 && dy != 0
		candidate := units.Point3{X: pt.X + dx, Y: pt.Y + dy, Z: pt.Z}

		if diagonal {
			orth1 := units.Point3{X: pt.X + dx, Y: pt.Y, Z: pt.Z}
			orth2 := units.Point3{X: pt.X, Y: pt.Y + dy, Z: pt.Z}
			if !t.IsOpen(orth1) || !t.IsOpen(orth2) {
				continue
			}
		}

		if !FitsAt(t, volume, candidate) {
			continue
		}

		out = append(out, Neighbor{Point: candidate, Cost: stepCost(m, diagonal)})
	}
	return out
}
