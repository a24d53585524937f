// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package units

import "fmt"

// Point3 is a signed 16-bit lattice coordinate in meters. Terrain,
// creature placement, and neighbor generation all operate in Point3;
// sub-meter precision only shows up in VectorCM (line_through_point).
type Point3 struct {
	X, Y, Z int16
}

// Pt3 constructs a Point3 from plain ints, truncating to int16 — callers
// are expected to stay within the tabletop's playable coordinate range.
func Pt3(x, y, z int) Point3 {
	return Point3{X: int16(x), Y: int16(y), Z: int16(z)}
}

// Add returns the component-wise sum.
func (p Point3) Add(o Point3) Point3 {
	return Point3{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Sub returns the component-wise difference p-o.
func (p Point3) Sub(o Point3) Point3 {
	return Point3{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

// String renders "(x,y,z)".
func (p Point3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}
