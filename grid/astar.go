// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package grid

import (
	"container/heap"

	"github.com/ironmoor/tactics/units"
)

// Predicate reports whether a node satisfies a goal. AStarMulti checks
// each predicate when its node is popped from the open set and, once
// satisfied, discards it so it is never checked again.
type Predicate func(units.Point3) bool

// PathResult is one (path, cost) produced by AStarMulti, in the order
// its predicate was satisfied.
type PathResult struct {
	Path []units.Point3
	Cost units.Distance
}

// NeighborFunc enumerates a node's outgoing edges.
type NeighborFunc func(units.Point3) []Neighbor

// HeuristicFunc estimates the remaining cost from a node. AStarMulti
// is run once per call with a single heuristic, so callers combining
// several goal predicates should supply an admissible heuristic for
// the nearest of them (or zero, degrading to Dijkstra).
type HeuristicFunc func(units.Point3) units.Distance

type openEntry struct {
	point  units.Point3
	g      units.Distance
	f      units.Distance
	order  int
	parent units.Point3
	hasPar bool
}

type openHeap []*openEntry

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].order < h[j].order
}
func (h openHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *openHeap) Push(x any)        { *h = append(*h, x.(*openEntry)) }
func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// AStarMulti searches out from start using neighbors and heuristic,
// returning one PathResult per predicate satisfied, in satisfaction
// order. Search stops once every predicate is satisfied or the open
// set is exhausted. Edges whose resulting g would exceed ceiling are
// pruned at enqueue time; this is the only ceiling check, since a
// pop-time check against f = g + h is only sound with an admissible
// heuristic, and callers may pass heuristics (e.g. a non-minimal
// per-step cost scaled by grid distance) that overestimate. Ties break
// by f then by insertion order.
func AStarMulti(start units.Point3, neighbors NeighborFunc, heuristic HeuristicFunc, ceiling units.Distance, predicates []Predicate) []PathResult {
	remaining := make([]Predicate, len(predicates))
	copy(remaining, predicates)

	results := make([]PathResult, 0, len(predicates))

	bestG := map[units.Point3]units.Distance{start: 0}
	cameFrom := map[units.Point3]units.Point3{}

	h := &openHeap{}
	heap.Init(h)
	counter := 0
	push := func(pt units.Point3, g units.Distance, parent units.Point3, hasParent bool) {
		counter++
		heap.Push(h, &openEntry{
			point: pt, g: g, f: g.Add(heuristic(pt)),
			order: counter, parent: parent, hasPar: hasParent,
		})
	}
	push(start, 0, units.Point3{}, false)

	for h.Len() > 0 && len(remaining) > 0 {
		entry := heap.Pop(h).(*openEntry)

		if g, ok := bestG[entry.point]; ok && entry.g != g {
			// stale entry: a better path to this node was already processed
			continue
		}
		if entry.hasPar {
			cameFrom[entry.point] = entry.parent
		}

		remaining = matchPredicates(entry.point, remaining, func(satisfiedAt units.Point3) {
			results = append(results, PathResult{
				Path: reconstructPath(cameFrom, start, satisfiedAt),
				Cost: entry.g,
			})
		})

		for _, n := range neighbors(entry.point) {
			g := entry.g.Add(n.Cost)
			if !g.LessEq(ceiling) {
				continue
			}
			if existing, ok := bestG[n.Point]; !ok || g.Centimeters() < existing.Centimeters() {
				bestG[n.Point] = g
				push(n.Point, g, entry.point, true)
			}
		}
	}

	return results
}

// matchPredicates evaluates pt against every predicate still pending,
// invoking onMatch and dropping the predicate for each one satisfied.
func matchPredicates(pt units.Point3, pending []Predicate, onMatch func(units.Point3)) []Predicate {
	out := pending[:0:0]
	for _, p := range pending {
		if p(pt) {
			onMatch(pt)
			continue
		}
		out = append(out, p)
	}
	return out
}

func reconstructPath(cameFrom map[units.Point3]units.Point3, start, end units.Point3) []units.Point3 {
	if end == start {
		return []units.Point3{start}
	}
	path := []units.Point3{end}
	cur := end
	for cur != start {
		parent, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, parent)
		cur = parent
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
