// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package collision

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ironmoor/tactics/grid"
	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/units"
)

// CreatureInput describes a creature to insert into group 1.
type CreatureInput struct {
	ID       id.CreatureID
	Position units.Point3
	Size     units.AABB
}

// VolumeInput describes a volume condition to insert into group 2.
type VolumeInput struct {
	ID     id.ConditionID
	Point  units.Point3
	Volume grid.Volume
}

// creatureBody is a group-1 AABB: a creature footprint centered on its
// scene position, with half-extents = size/2 meters.
type creatureBody struct {
	ID       id.CreatureID
	Min, Max r3.Vec
}

// volumeBody is a group-2 AABB bounding a volume condition's shape.
type volumeBody struct {
	ID       id.ConditionID
	Min, Max r3.Vec
}

// World is a broadphase collision world with two mutually exclusive
// contact groups: creatures (group 1) collide only with condition
// volumes (group 2), and vice versa.
type World struct {
	creatures []creatureBody
	volumes   []volumeBody
}

// MakeWorld inserts each creature as an AABB at its scene position and
// each volume condition at its point.
func MakeWorld(creatures []CreatureInput, volumes []VolumeInput) *World {
	w := &World{
		creatures: make([]creatureBody, 0, len(creatures)),
		volumes:   make([]volumeBody, 0, len(volumes)),
	}
	for _, c := range creatures {
		half := r3.Vec{X: float64(c.Size.X) / 2, Y: float64(c.Size.Y) / 2, Z: float64(c.Size.Z) / 2}
		center := pointToVec(c.Position)
		w.creatures = append(w.creatures, creatureBody{
			ID:  c.ID,
			Min: r3.Sub(center, half),
			Max: r3.Add(center, half),
		})
	}
	for _, v := range volumes {
		min, max := boundingBox(v.Point, v.Volume)
		w.volumes = append(w.volumes, volumeBody{ID: v.ID, Min: min, Max: max})
	}
	return w
}

func pointToVec(p units.Point3) r3.Vec {
	return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

// boundingBox computes an axis-aligned bounding box for v placed at
// pt. Only AABB is an exact fit; the other kinds are conservative
// bounds since their precise footprints aren't fully specified.
func boundingBox(pt units.Point3, v grid.Volume) (r3.Vec, r3.Vec) {
	center := pointToVec(pt)
	switch v.Kind {
	case grid.VolumeKindAABB:
		corner := r3.Add(center, r3.Vec{X: float64(v.AABB.X), Y: float64(v.AABB.Y), Z: float64(v.AABB.Z)})
		return center, corner
	case grid.VolumeKindSphere:
		r := float64(v.Sphere.Meters())
		half := r3.Vec{X: r, Y: r, Z: r}
		return r3.Sub(center, half), r3.Add(center, half)
	case grid.VolumeKindLine:
		end := r3.Add(center, r3.Vec{X: float64(v.Line.X) / 100, Y: float64(v.Line.Y) / 100, Z: 0})
		return minVec(center, end), maxVec(center, end)
	case grid.VolumeKindVerticalCylinder:
		r := float64(v.CylinderRadius.Meters())
		h := float64(v.CylinderHeight.Meters())
		return r3.Sub(center, r3.Vec{X: r, Y: r, Z: 0}), r3.Add(center, r3.Vec{X: r, Y: r, Z: h})
	default:
		return center, center
	}
}

func minVec(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: minF(a.X, b.X), Y: minF(a.Y, b.Y), Z: minF(a.Z, b.Z)}
}

func maxVec(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: maxF(a.X, b.X), Y: maxF(a.Y, b.Y), Z: maxF(a.Z, b.Z)}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func overlaps(aMin, aMax, bMin, bMax r3.Vec) bool {
	return aMin.X <= bMax.X && aMax.X >= bMin.X &&
		aMin.Y <= bMax.Y && aMax.Y >= bMin.Y &&
		aMin.Z <= bMax.Z && aMax.Z >= bMin.Z
}

// QueryWorld iterates every contact pair between group 1 and group 2,
// applying f symmetrically in both orderings, once as (creature,
// volume) and once as (volume, creature), and collects every non-nil
// result.
func QueryWorld(w *World, f func(a, b any) any) []any {
	var out []any
	for _, c := range w.creatures {
		for _, v := range w.volumes {
			if !overlaps(c.Min, c.Max, v.Min, v.Max) {
				continue
			}
			creature := CreatureContact{ID: c.ID}
			volume := VolumeContact{ID: v.ID}
			if r := f(creature, volume); r != nil {
				out = append(out, r)
			}
			if r := f(volume, creature); r != nil {
				out = append(out, r)
			}
		}
	}
	return out
}

// CreatureContact identifies the creature side of an overlapping pair.
type CreatureContact struct {
	ID id.CreatureID
}

// VolumeContact identifies the condition-volume side of an overlapping pair.
type VolumeContact struct {
	ID id.ConditionID
}
