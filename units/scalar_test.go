// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ironmoor/tactics/units"
)

func TestHPSaturatesAtMaxAndZero(t *testing.T) {
	hp := units.HP(8)
	assert.Equal(t, units.HP(10), hp.Add(5, 10))
	assert.Equal(t, units.HP(0), hp.Sub(20, 10))
}

func TestEnergyAtLeast(t *testing.T) {
	e := units.Energy(3)
	assert.True(t, e.AtLeast(3))
	assert.False(t, e.AtLeast(4))
}

func TestDistanceMetersTruncates(t *testing.T) {
	d := units.Cm(250)
	assert.Equal(t, int64(2), d.Meters())
	assert.Equal(t, units.Distance(500), units.FromMeters(5))
}

func TestDistanceSubSaturates(t *testing.T) {
	d := units.Cm(100)
	assert.Equal(t, units.Distance(0), d.Sub(units.Cm(150)))
}
