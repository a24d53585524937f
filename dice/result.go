// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

import (
	"fmt"
	"strings"
)

// Result is a Pool's audit trail for one roll: the individual face
// values (spec.md §4.B "rolling yields the individual rolls and the
// total") plus the derived total, so a damage or heal log can be
// explained after the fact without re-rolling.
type Result struct {
	pool     *Pool
	rolls    [][]int
	modifier int
	total    int
	err      error
}

// Total is the sum of every rolled face plus the pool's modifier.
func (r *Result) Total() int { return r.total }

// Rolls returns the individual face values, grouped the same way the
// pool's dice were specified.
func (r *Result) Rolls() [][]int { return r.rolls }

// Modifier is the flat bonus/penalty baked into the pool.
func (r *Result) Modifier() int { return r.modifier }

// Error reports a failure from the underlying Roller, if any.
func (r *Result) Error() error { return r.err }

// String renders the roll for audit logs, e.g. "2d6:[4,2] + 3 = 9".
func (r *Result) String() string {
	if r.err != nil {
		return fmt.Sprintf("ERROR: %v", r.err)
	}

	groups := make([]string, 0, len(r.rolls))
	for i, faces := range r.rolls {
		if len(faces) == 0 {
			continue
		}
		faceStrs := make([]string, len(faces))
		for j, f := range faces {
			faceStrs[j] = fmt.Sprintf("%d", f)
		}
		spec := r.pool.dice[i]
		if spec.Count == 1 {
			groups = append(groups, fmt.Sprintf("d%d:[%s]", spec.Size, strings.Join(faceStrs, ",")))
		} else {
			groups = append(groups, fmt.Sprintf("%dd%d:[%s]", spec.Count, spec.Size, strings.Join(faceStrs, ",")))
		}
	}

	out := strings.Join(groups, " + ")
	switch {
	case r.modifier > 0:
		out = fmt.Sprintf("%s + %d", out, r.modifier)
	case r.modifier < 0:
		out = fmt.Sprintf("%s - %d", out, -r.modifier)
	}
	return fmt.Sprintf("%s = %d", out, r.total)
}
