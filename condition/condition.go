// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package condition

import (
	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/units"
)

// Kind tags a Condition's variant.
type Kind string

const (
	// KindDead: the creature cannot act or move.
	KindDead Kind = "dead"
	// KindIncapacitated: the creature cannot act or move.
	KindIncapacitated Kind = "incapacitated"
	// KindAddDamageBuff: damage the creature deals is increased by a flat amount.
	KindAddDamageBuff Kind = "add_damage_buff"
	// KindDoubleMaxMovement: the creature's speed is doubled for the purposes of its turn.
	KindDoubleMaxMovement Kind = "double_max_movement"
	// KindActivateAbility: grants the creature a class- or condition-sourced ability.
	KindActivateAbility Kind = "activate_ability"
	// KindRecurringEffect: an Effect applied to the creature at the start of every tick.
	KindRecurringEffect Kind = "recurring_effect"
)

// Condition is a tagged union; only the field matching Kind is meaningful.
type Condition struct {
	Kind Kind

	AddDamageBuff   units.HP
	ActivateAbility id.AbilityID
	RecurringEffect Effect
}

// Dead constructs the Dead condition.
func Dead() Condition { return Condition{Kind: KindDead} }

// Incapacitated constructs the Incapacitated condition.
func Incapacitated() Condition { return Condition{Kind: KindIncapacitated} }

// AddDamageBuff constructs an AddDamageBuff(amount) condition.
func AddDamageBuff(amount units.HP) Condition {
	return Condition{Kind: KindAddDamageBuff, AddDamageBuff: amount}
}

// DoubleMaxMovement constructs the DoubleMaxMovement condition.
func DoubleMaxMovement() Condition { return Condition{Kind: KindDoubleMaxMovement} }

// ActivateAbilityCondition constructs an ActivateAbility(abid) condition.
func ActivateAbilityCondition(abid id.AbilityID) Condition {
	return Condition{Kind: KindActivateAbility, ActivateAbility: abid}
}

// RecurringEffectCondition constructs a RecurringEffect(e) condition.
func RecurringEffectCondition(e Effect) Condition {
	return Condition{Kind: KindRecurringEffect, RecurringEffect: e}
}

// AppliedCondition pairs a Condition with its remaining duration and
// the id it was stored under on a creature.
type AppliedCondition struct {
	ID        id.ConditionID
	Condition Condition
	Duration  Duration
}
