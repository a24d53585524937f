// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package condition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ironmoor/tactics/condition"
	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/units"
)

func TestDurationDecrement(t *testing.T) {
	d := condition.RoundsRemaining(2)
	d = d.Decrement()
	assert.Equal(t, condition.RoundsRemaining(1), d)
	assert.False(t, d.IsExpired())

	d = d.Decrement()
	assert.True(t, d.IsExpired())

	// Decrementing an expired duration stays at zero, it doesn't wrap.
	d = d.Decrement()
	assert.True(t, d.IsExpired())
}

func TestInterminateNeverExpires(t *testing.T) {
	d := condition.Interminate()
	for i := 0; i < 5; i++ {
		d = d.Decrement()
	}
	assert.False(t, d.IsExpired())
}

func TestConditionConstructors(t *testing.T) {
	assert.Equal(t, condition.KindDead, condition.Dead().Kind)
	assert.Equal(t, condition.KindIncapacitated, condition.Incapacitated().Kind)

	buff := condition.AddDamageBuff(units.HP(3))
	assert.Equal(t, condition.KindAddDamageBuff, buff.Kind)
	assert.Equal(t, units.HP(3), buff.AddDamageBuff)

	abid := id.NewAbilityID()
	act := condition.ActivateAbilityCondition(abid)
	assert.Equal(t, condition.KindActivateAbility, act.Kind)
	assert.Equal(t, abid, act.ActivateAbility)
}
