// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package creature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironmoor/tactics/condition"
	"github.com/ironmoor/tactics/creature"
	"github.com/ironmoor/tactics/dice"
	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/units"
)

type fakeView struct {
	classes map[string]creature.Class
	volumes map[id.CreatureID][]condition.AppliedCondition
}

func (f fakeView) ClassByName(name string) (creature.Class, bool) {
	c, ok := f.classes[name]
	return c, ok
}

func (f fakeView) VolumeConditionsFor(cid id.CreatureID) []condition.AppliedCondition {
	return f.volumes[cid]
}

func newFakeView() fakeView {
	return fakeView{classes: map[string]creature.Class{}, volumes: map[id.CreatureID][]condition.AppliedCondition{}}
}

func TestCanActFalseWhenDead(t *testing.T) {
	c := creature.New("Ranger", "ranger", units.FromMeters(6), units.HP(10), units.Energy(5), units.Cube(1), dice.Expr(1, 20))
	deadID := id.NewConditionID()
	c = c.WithAppliedCondition(condition.AppliedCondition{ID: deadID, Condition: condition.Dead(), Duration: condition.Interminate()})

	d := creature.NewDynamicCreature(c, newFakeView())
	assert.False(t, d.CanAct())
	assert.False(t, d.CanMove())
}

func TestSpeedDoublesWithCondition(t *testing.T) {
	c := creature.New("Ranger", "ranger", units.FromMeters(6), units.HP(10), units.Energy(5), units.Cube(1), dice.Expr(1, 20))
	c = c.WithAppliedCondition(condition.AppliedCondition{
		ID: id.NewConditionID(), Condition: condition.DoubleMaxMovement(), Duration: condition.Interminate(),
	})

	d := creature.NewDynamicCreature(c, newFakeView())
	assert.Equal(t, units.FromMeters(12).Centimeters(), d.Speed())
}

func TestConditionsIncludeClassInherited(t *testing.T) {
	view := newFakeView()
	view.classes["ranger"] = creature.Class{
		Name:                "ranger",
		InheritedConditions: []condition.Condition{condition.AddDamageBuff(units.HP(2))},
	}
	c := creature.New("Ranger", "ranger", units.FromMeters(6), units.HP(10), units.Energy(5), units.Cube(1), dice.Expr(1, 20))

	d := creature.NewDynamicCreature(c, view)
	conds := d.Conditions()
	require.Len(t, conds, 1)
	assert.Equal(t, condition.KindAddDamageBuff, conds[0].Condition.Kind)
	assert.True(t, conds[0].Duration.Kind == condition.DurationKindInterminate)
}

func TestTickExpiresZeroDurationCondition(t *testing.T) {
	c := creature.New("Cleric", "cleric", units.FromMeters(6), units.HP(10), units.Energy(5), units.Cube(1), dice.Expr(1, 20))
	deadID := id.NewConditionID()
	incap5 := id.NewConditionID()
	incapInf := id.NewConditionID()
	c = c.WithAppliedCondition(condition.AppliedCondition{ID: deadID, Condition: condition.Dead(), Duration: condition.RoundsRemaining(0)})
	c = c.WithAppliedCondition(condition.AppliedCondition{ID: incap5, Condition: condition.Incapacitated(), Duration: condition.RoundsRemaining(5)})
	c = c.WithAppliedCondition(condition.AppliedCondition{ID: incapInf, Condition: condition.Incapacitated(), Duration: condition.Interminate()})

	d := creature.NewDynamicCreature(c, newFakeView())
	result := creature.Tick(d, dice.NewMockRoller(1))

	var decremented, removed int
	for _, ev := range result.Events {
		switch ev.Kind {
		case creature.TickEventDecrementCondition:
			decremented++
			assert.Equal(t, incap5, ev.ConditionID)
		case creature.TickEventRemoveCondition:
			removed++
			assert.Equal(t, deadID, ev.ConditionID)
		}
	}
	assert.Equal(t, 1, decremented)
	assert.Equal(t, 1, removed)
}

func TestTickRecurringEffectFiresAndMarksDead(t *testing.T) {
	c := creature.New("Target", "fighter", units.FromMeters(6), units.HP(1), units.Energy(5), units.Cube(1), dice.Expr(1, 20))
	recID := id.NewConditionID()
	c = c.WithAppliedCondition(condition.AppliedCondition{
		ID:        recID,
		Condition: condition.RecurringEffectCondition(condition.Damage(dice.Flat(1))),
		Duration:  condition.RoundsRemaining(2),
	})

	d := creature.NewDynamicCreature(c, newFakeView())
	roller := dice.NewMockRoller(1)
	result := creature.Tick(d, roller)

	assert.True(t, result.Creature.CurHP.IsZero())

	var appliedDead bool
	for _, ev := range result.Events {
		if ev.Kind == creature.TickEventApplyCondition && ev.AppliedCond.Condition.Kind == condition.KindDead {
			appliedDead = true
		}
	}
	assert.True(t, appliedDead)
}
