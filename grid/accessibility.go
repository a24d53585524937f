// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package grid

import "github.com/ironmoor/tactics/units"

// GetAllAccessible enumerates every open point within speed/100
// meters of start along each axis, builds one equality predicate per
// candidate, and runs AStarMulti with cost ceiling speed. It returns
// the points actually reachable within speed.
func GetAllAccessible(m Metric, start units.Point3, t Terrain, volume units.AABB, speed units.Distance) []units.Point3 {
	radius := int16(speed.Meters())

	var candidates []units.Point3
	var predicates []Predicate
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			for dz := -radius; dz <= radius; dz++ {
				pt := units.Point3{X: start.X + dx, Y: start.Y + dy, Z: start.Z + dz}
				if !t.IsOpen(pt) {
					continue
				}
				target := pt
				candidates = append(candidates, target)
				predicates = append(predicates, func(p units.Point3) bool { return p == target })
			}
		}
	}

	neighbors := func(pt units.Point3) []Neighbor { return Neighbors(m, t, volume, pt) }
	heuristic := func(units.Point3) units.Distance { return 0 }

	results := AStarMulti(start, neighbors, heuristic, speed, predicates)

	reached := make([]units.Point3, 0, len(results))
	for _, r := range results {
		if len(r.Path) == 0 {
			continue
		}
		reached = append(reached, r.Path[len(r.Path)-1])
	}
	return reached
}

// FindPath runs AStarMulti with a single equality predicate on
// destination and returns the first result, if any.
func FindPath(m Metric, start units.Point3, speed units.Distance, t Terrain, volume units.AABB, destination units.Point3) (PathResult, bool) {
	neighbors := func(pt units.Point3) []Neighbor { return Neighbors(m, t, volume, pt) }
	heuristic := func(pt units.Point3) units.Distance { return PointDistance(m, pt, destination) }

	results := AStarMulti(start, neighbors, heuristic, speed, []Predicate{
		func(p units.Point3) bool { return p == destination },
	})
	if len(results) == 0 {
		return PathResult{}, false
	}
	return results[0], true
}
