// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package grid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ironmoor/tactics/units"
)

// LineThroughPoint normalizes (clicked - origin), scales it by length
// meters, and truncates the result into a VectorCM (centimeters). The
// resulting vector is the exclusive destination offset from origin; z
// is always truncated to 0.
func LineThroughPoint(origin, clicked units.Point3, length units.Distance) units.VectorCM {
	delta := r3.Vec{
		X: float64(clicked.X - origin.X),
		Y: float64(clicked.Y - origin.Y),
		Z: 0,
	}
	if delta == (r3.Vec{}) {
		return units.VectorCM{}
	}
	unit := r3.Unit(delta)
	scaled := r3.Scale(float64(length.Meters()), unit)

	return units.VectorCM{
		X: int32(scaled.X * 100),
		Y: int32(scaled.Y * 100),
		Z: 0,
	}
}

// ItemAt pairs an id with the point it occupies, for ItemsWithinVolume results.
type ItemAt[K comparable] struct {
	ID    K
	Point units.Point3
}

// ItemsWithinVolume returns every (id, point) among items whose point
// lies within v, placed at pt. Only Sphere and Line volumes are
// implemented; other kinds return nil.
func ItemsWithinVolume[K comparable](v Volume, pt units.Point3, items map[K]units.Point3) []ItemAt[K] {
	switch v.Kind {
	case VolumeKindSphere:
		return sphereItems(v, pt, items)
	case VolumeKindLine:
		return lineItems(v, pt, items)
	default:
		return nil
	}
}

func sphereItems[K comparable](v Volume, pt units.Point3, items map[K]units.Point3) []ItemAt[K] {
	radiusCm := float64(v.Sphere.Centimeters())
	var out []ItemAt[K]
	for id, p := range items {
		d := PointDistance(Realistic, pt, p)
		if float64(d.Centimeters()) <= radiusCm {
			out = append(out, ItemAt[K]{ID: id, Point: p})
		}
	}
	return out
}

func lineItems[K comparable](v Volume, pt units.Point3, items map[K]units.Point3) []ItemAt[K] {
	dest := pt.Add(v.Line.ToPoint3())
	cells := bresenham(pt, dest)

	cellSet := make(map[units.Point3]struct{}, len(cells))
	for _, c := range cells {
		cellSet[c] = struct{}{}
	}

	var out []ItemAt[K]
	for id, p := range items {
		if _, ok := cellSet[p]; ok {
			out = append(out, ItemAt[K]{ID: id, Point: p})
		}
	}
	return out
}

// bresenham rasterizes the xy-plane line from a to b (z=0 throughout)
// using Bresenham's algorithm.
func bresenham(a, b units.Point3) []units.Point3 {
	x0, y0 := int(a.X), int(a.Y)
	x1, y1 := int(b.X), int(b.Y)

	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	var points []units.Point3
	for {
		points = append(points, units.Point3{X: int16(x0), Y: int16(y0), Z: 0})
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
	return points
}
