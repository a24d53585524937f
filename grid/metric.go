// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package grid

import (
	"math"

	"github.com/ironmoor/tactics/units"
)

// Metric selects how distance and step cost are computed.
type Metric int

const (
	// Realistic measures Euclidean distance in centimeters.
	Realistic Metric = iota
	// DnD measures Chebyshev distance (max of |Δx|,|Δy|), ignoring z for cost.
	DnD
)

const (
	orthogonalCostRealistic = 100
	diagonalCostRealistic   = 141
	orthogonalCostDnD       = 99
	diagonalCostDnD         = 100
)

// PointDistance computes the distance between a and b under m. It is
// symmetric: PointDistance(m, a, b) == PointDistance(m, b, a).
func PointDistance(m Metric, a, b units.Point3) units.Distance {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	dz := float64(b.Z - a.Z)

	switch m {
	case DnD:
		ax, ay := math.Abs(dx), math.Abs(dy)
		chebyshev := math.Max(ax, ay)
		return units.FromMeters(int(chebyshev))
	default: // Realistic
		meters := math.Sqrt(dx*dx + dy*dy + dz*dz)
		return units.Cm(uint32(meters * 100))
	}
}

// stepCost returns the cost of moving from one point to an orthogonal
// or diagonal planar neighbor under m.
func stepCost(m Metric, diagonal bool) units.Distance {
	switch m {
	case DnD:
		if diagonal {
			return units.Cm(diagonalCostDnD)
		}
		return units.Cm(orthogonalCostDnD)
	default:
		if diagonal {
			return units.Cm(diagonalCostRealistic)
		}
		return units.Cm(orthogonalCostRealistic)
	}
}
