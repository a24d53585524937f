// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package units

// VectorCM is a signed 32-bit offset in centimeters, precise enough to
// survive a normalize-then-scale-then-truncate round trip without the
// meter-grained rounding Point3 would introduce. line_through_point
// produces one of these; z is always truncated to 0 (grid.rs never
// reasoned about 3D line rasterization, only the xy-plane).
type VectorCM struct {
	X, Y, Z int32
}

// ToPoint3 truncates centimeters down to whole meters.
func (v VectorCM) ToPoint3() Point3 {
	return Pt3(int(v.X/100), int(v.Y/100), int(v.Z/100))
}
