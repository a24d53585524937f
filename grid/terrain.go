// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package grid

import "github.com/ironmoor/tactics/units"

// Terrain is the set of open points a scene exposes to the grid
// engine. A point is open iff it is present in the set.
type Terrain map[units.Point3]struct{}

// NewTerrain builds a Terrain from a list of open points.
func NewTerrain(points ...units.Point3) Terrain {
	t := make(Terrain, len(points))
	for _, p := range points {
		t[p] = struct{}{}
	}
	return t
}

// IsOpen reports whether pt is open terrain.
func (t Terrain) IsOpen(pt units.Point3) bool {
	_, ok := t[pt]
	return ok
}

// Add marks pt as open.
func (t Terrain) Add(pt units.Point3) { t[pt] = struct{}{} }

// Remove marks pt as closed.
func (t Terrain) Remove(pt units.Point3) { delete(t, pt) }

// FitsAt reports whether a volume's AABB footprint, placed with its
// origin at pt, lies entirely on open terrain.
func FitsAt(t Terrain, volume units.AABB, pt units.Point3) bool {
	for x := int16(0); x < int16(volume.X); x++ {
		for y := int16(0); y < int16(volume.Y); y++ {
			for z := int16(0); z < int16(volume.Z); z++ {
				p := units.Point3{X: pt.X + x, Y: pt.Y + y, Z: pt.Z + z}
				if !t.IsOpen(p) {
					return false
				}
			}
		}
	}
	return true
}
