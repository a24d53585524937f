// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// termPattern matches a single dice term: "2d6", "d20", "3d8-2", with an
// optional leading count and trailing flat modifier. This is the full
// grammar a Pool needs: a sum of terms n·d·s + k (spec.md §4.B), never
// more than one die size per ability or effect.
var termPattern = regexp.MustCompile(`^([0-9]*)[dD]([0-9]+)([+-][0-9]+)?$`)

// ParseNotation parses a single dice term ("2d6", "d20", "3d8-2", ...)
// into a Pool. Leading/trailing whitespace is trimmed and "D" is
// accepted as an alias for "d"; the count defaults to 1 when omitted.
func ParseNotation(notation string) (*Pool, error) {
	notation = strings.TrimSpace(notation)
	if notation == "" {
		return nil, fmt.Errorf("%w: empty notation", ErrInvalidNotation)
	}

	m := termPattern.FindStringSubmatch(notation)
	if m == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidNotation, notation)
	}

	count := 1
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid count in %s", ErrInvalidNotation, notation)
		}
		count = n
	}

	size, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid die size in %s", ErrInvalidNotation, notation)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: die size must be positive in %s", ErrInvalidDieSize, notation)
	}

	modifier := 0
	if m[3] != "" {
		mod, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid modifier in %s", ErrInvalidNotation, notation)
		}
		modifier = mod
	}

	return SimplePool(count, size, modifier), nil
}

// MustParseNotation parses notation and panics on error. Reserved for
// literal notation known at compile time (content-authoring tests,
// fixture data), never for values read from untrusted input.
func MustParseNotation(notation string) *Pool {
	pool, err := ParseNotation(notation)
	if err != nil {
		panic(fmt.Sprintf("dice: failed to parse notation %q: %v", notation, err))
	}
	return pool
}
