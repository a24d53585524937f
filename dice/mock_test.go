// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

import (
	"testing"
)

func TestMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name     string
		results  []int
		rolls    int
		size     int
		expected []int
	}{
		{
			name:     "single result",
			results:  []int{4},
			rolls:    3,
			size:     6,
			expected: []int{4, 4, 4},
		},
		{
			name:     "multiple results cycling",
			results:  []int{1, 2, 3},
			rolls:    5,
			size:     6,
			expected: []int{1, 2, 3, 1, 2},
		},
		{
			name:     "exact match",
			results:  []int{6, 5, 4, 3, 2, 1},
			rolls:    6,
			size:     6,
			expected: []int{6, 5, 4, 3, 2, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockRoller(tt.results...)

			for i := 0; i < tt.rolls; i++ {
				result, err := mock.Roll(tt.size)
				if err != nil {
					t.Fatalf("Roll %d: unexpected error %v", i, err)
				}
				if result != tt.expected[i] {
					t.Errorf("Roll %d: got %d, want %d", i, result, tt.expected[i])
				}
			}
		})
	}
}

func TestMockRoller_RollN(t *testing.T) {
	mock := NewMockRoller(6, 5, 4, 3, 2, 1)

	results, err := mock.RollN(4, 6)
	if err != nil {
		t.Fatalf("RollN error = %v", err)
	}
	expected := []int{6, 5, 4, 3}

	if len(results) != len(expected) {
		t.Fatalf("RollN(4, 6) returned %d results, want %d", len(results), len(expected))
	}
	for i, result := range results {
		if result != expected[i] {
			t.Errorf("RollN[%d] = %d, want %d", i, result, expected[i])
		}
	}
}

func TestMockRoller_Reset(t *testing.T) {
	mock := NewMockRoller(1, 2, 3)

	if got, _ := mock.Roll(6); got != 1 {
		t.Errorf("First roll = %d, want 1", got)
	}
	if got, _ := mock.Roll(6); got != 2 {
		t.Errorf("Second roll = %d, want 2", got)
	}

	mock.Reset()
	if got, _ := mock.Roll(6); got != 1 {
		t.Errorf("After reset roll = %d, want 1", got)
	}
}

func TestMockRoller_ErrorsAndPanics(t *testing.T) {
	if _, err := NewMockRoller(1).Roll(0); err == nil {
		t.Error("Roll(0) expected an error for invalid die size")
	}
	if _, err := NewMockRoller(1).RollN(-1, 6); err == nil {
		t.Error("RollN(-1, 6) expected an error for invalid die count")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic for out-of-range predetermined result")
		}
	}()
	mock := NewMockRoller(7)
	_, _ = mock.Roll(6) // 7 is invalid for d6
}

func TestNewMockRollerPanicsWithNoResults(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic when constructing MockRoller with no results")
		}
	}()
	NewMockRoller()
}
