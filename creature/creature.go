// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package creature

import (
	"github.com/ironmoor/tactics/condition"
	"github.com/ironmoor/tactics/dice"
	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/units"
)

// SkillLevel is a creature's proficiency in one attribute slot.
type SkillLevel int

const (
	SkillUntrained SkillLevel = iota
	SkillNovice
	SkillSkilled
	SkillExpert
	SkillMaster
)

// AbilityStatus tracks one ability a creature can invoke and how many
// more turns remain before its cooldown clears.
type AbilityStatus struct {
	AbilityID id.AbilityID
	Cooldown  int
}

// Key implements id.Keyed so AbilityStatus can live in an id.Indexed set.
func (s AbilityStatus) Key() id.AbilityID { return s.AbilityID }

// Creature is the immutable-by-copy static record for one creature.
// Every mutator below returns a new Creature; the receiver is
// untouched, so stale views elsewhere stay valid.
type Creature struct {
	ID        id.CreatureID
	Name      string
	ClassName string

	Speed units.Distance

	MaxHP units.HP
	CurHP units.HP

	MaxEnergy units.Energy
	CurEnergy units.Energy

	Abilities *id.Indexed[id.AbilityID, AbilityStatus]

	Conditions map[id.ConditionID]condition.AppliedCondition

	Attributes map[id.AttrID]SkillLevel

	Size units.AABB

	Initiative *dice.Pool

	Inventory map[id.ItemID]int

	Bio      string
	Notes    string
	Portrait string
}

// Key implements id.Keyed.
func (c Creature) Key() id.CreatureID { return c.ID }

// New constructs a fresh Creature with empty collections and full HP/energy.
func New(name, className string, speed units.Distance, maxHP units.HP, maxEnergy units.Energy, size units.AABB, initiative *dice.Pool) Creature {
	return Creature{
		ID:         id.NewCreatureID(),
		Name:       name,
		ClassName:  className,
		Speed:      speed,
		MaxHP:      maxHP,
		CurHP:      maxHP,
		MaxEnergy:  maxEnergy,
		CurEnergy:  maxEnergy,
		Abilities:  id.NewIndexed[id.AbilityID, AbilityStatus](),
		Conditions: map[id.ConditionID]condition.AppliedCondition{},
		Attributes: map[id.AttrID]SkillLevel{},
		Size:       size,
		Initiative: initiative,
		Inventory:  map[id.ItemID]int{},
	}
}

// clone returns a deep-enough copy: new maps/Indexed so mutating the
// copy never touches the receiver's collections.
func (c Creature) clone() Creature {
	next := c
	next.Abilities = c.Abilities.Clone()

	next.Conditions = make(map[id.ConditionID]condition.AppliedCondition, len(c.Conditions))
	for k, v := range c.Conditions {
		next.Conditions[k] = v
	}

	next.Attributes = make(map[id.AttrID]SkillLevel, len(c.Attributes))
	for k, v := range c.Attributes {
		next.Attributes[k] = v
	}

	next.Inventory = make(map[id.ItemID]int, len(c.Inventory))
	for k, v := range c.Inventory {
		next.Inventory[k] = v
	}

	return next
}

// WithDamage returns a copy with CurHP reduced by amount, saturating at zero.
func (c Creature) WithDamage(amount units.HP) Creature {
	next := c.clone()
	next.CurHP = c.CurHP.Sub(int32(amount), c.MaxHP)
	return next
}

// WithHeal returns a copy with CurHP increased by amount, saturating at MaxHP.
func (c Creature) WithHeal(amount units.HP) Creature {
	next := c.clone()
	next.CurHP = c.CurHP.Add(int32(amount), c.MaxHP)
	return next
}

// WithEnergyDelta returns a copy with CurEnergy changed by delta, saturating at [0, MaxEnergy].
func (c Creature) WithEnergyDelta(delta int32) Creature {
	next := c.clone()
	next.CurEnergy = c.CurEnergy.Add(delta, c.MaxEnergy)
	return next
}

// WithAppliedCondition returns a copy with ac stored under its ID.
func (c Creature) WithAppliedCondition(ac condition.AppliedCondition) Creature {
	next := c.clone()
	next.Conditions[ac.ID] = ac
	return next
}

// WithDecrementedCondition returns a copy with condID's duration decremented one tick.
func (c Creature) WithDecrementedCondition(condID id.ConditionID) Creature {
	ac, ok := c.Conditions[condID]
	if !ok {
		return c
	}
	next := c.clone()
	ac.Duration = ac.Duration.Decrement()
	next.Conditions[condID] = ac
	return next
}

// WithRemovedCondition returns a copy with condID dropped from Conditions.
func (c Creature) WithRemovedCondition(condID id.ConditionID) Creature {
	next := c.clone()
	delete(next.Conditions, condID)
	return next
}

// Class is a named immutable template: an ability list plus a set of
// conditions every instance of the class inherits with Interminate
// duration, without those conditions ever being stored on the
// creature itself.
type Class struct {
	Name                string
	Abilities           []id.AbilityID
	InheritedConditions []condition.Condition
}

// Key implements id.Keyed so Class can live in an id.Indexed[string, Class].
func (c Class) Key() string { return c.Name }
