// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package units

// AABB gives non-negative meter extents along +x, +y, +z from an
// origin point. It doubles as both a creature's footprint (for
// corner-cutting and collision) and a volume shape variant.
type AABB struct {
	X, Y, Z uint8
}

// Cube returns an AABB with equal extents on every axis.
func Cube(n uint8) AABB { return AABB{X: n, Y: n, Z: n} }

// Volume returns x*y*z, the number of unit cells the box occupies.
func (a AABB) Volume() int {
	return int(a.X) * int(a.Y) * int(a.Z)
}
