// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package grid

import "github.com/ironmoor/tactics/units"

// VolumeKind tags a Volume's variant.
type VolumeKind string

const (
	VolumeKindSphere           VolumeKind = "sphere"
	VolumeKindAABB             VolumeKind = "aabb"
	VolumeKindLine             VolumeKind = "line"
	VolumeKindVerticalCylinder VolumeKind = "vertical_cylinder"
)

// Volume is a tagged union of placeable shapes. Only AABB is fully
// specified for PointsInVolume; Sphere and Line are additionally
// supported by ItemsWithinVolume. VerticalCylinder is a placeholder
// carried for forward compatibility with its class of ability.
type Volume struct {
	Kind VolumeKind

	Sphere units.Distance
	AABB   units.AABB
	Line   units.VectorCM

	CylinderRadius units.Distance
	CylinderHeight units.Distance
}

// NewSphere constructs a Sphere(radius) volume.
func NewSphere(radius units.Distance) Volume {
	return Volume{Kind: VolumeKindSphere, Sphere: radius}
}

// NewAABB constructs an AABB(box) volume.
func NewAABB(box units.AABB) Volume {
	return Volume{Kind: VolumeKindAABB, AABB: box}
}

// NewLine constructs a Line(vector) volume.
func NewLine(vector units.VectorCM) Volume {
	return Volume{Kind: VolumeKindLine, Line: vector}
}

// NewVerticalCylinder constructs a VerticalCylinder(radius, height) volume.
func NewVerticalCylinder(radius, height units.Distance) Volume {
	return Volume{Kind: VolumeKindVerticalCylinder, CylinderRadius: radius, CylinderHeight: height}
}

// PointsInVolume enumerates the integer lattice points v occupies
// when placed at pt. Only AABB is implemented; other kinds return nil.
func PointsInVolume(v Volume, pt units.Point3) []units.Point3 {
	if v.Kind != VolumeKindAABB {
		return nil
	}
	box := v.AABB
	points := make([]units.Point3, 0, box.Volume())
	for x := int16(0); x < int16(box.X); x++ {
		for y := int16(0); y < int16(box.Y); y++ {
			for z := int16(0); z < int16(box.Z); z++ {
				points = append(points, units.Point3{X: pt.X + x, Y: pt.Y + y, Z: pt.Z + z})
			}
		}
	}
	return points
}

// VolumeFitsAtPoint reports whether every point v occupies at pt is
// open terrain.
func VolumeFitsAtPoint(v Volume, t Terrain, pt units.Point3) bool {
	for _, p := range PointsInVolume(v, pt) {
		if !t.IsOpen(p) {
			return false
		}
	}
	return true
}
