// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package condition

import (
	"github.com/ironmoor/tactics/dice"
	"github.com/ironmoor/tactics/units"
)

// EffectKind tags an Effect's variant.
type EffectKind string

const (
	// EffectKindDamage rolls Dice and subtracts the result from the target's HP.
	EffectKindDamage EffectKind = "damage"
	// EffectKindHeal rolls Dice and adds the result to the target's HP.
	EffectKindHeal EffectKind = "heal"
	// EffectKindGenerateEnergy grants a flat amount of Energy.
	EffectKindGenerateEnergy EffectKind = "generate_energy"
	// EffectKindMultiEffect applies every contained Effect in order.
	EffectKindMultiEffect EffectKind = "multi_effect"
	// EffectKindApplyCondition attaches a Condition with the given Duration.
	EffectKindApplyCondition EffectKind = "apply_condition"
)

// Effect is a tagged union; only the field matching Kind is meaningful.
type Effect struct {
	Kind EffectKind

	Dice           *dice.Pool
	GenerateEnergy units.Energy
	MultiEffect    []Effect

	ApplyConditionDuration  Duration
	ApplyConditionCondition Condition
}

// Damage constructs a Damage(dice) effect.
func Damage(d *dice.Pool) Effect { return Effect{Kind: EffectKindDamage, Dice: d} }

// Heal constructs a Heal(dice) effect.
func Heal(d *dice.Pool) Effect { return Effect{Kind: EffectKindHeal, Dice: d} }

// GenerateEnergy constructs a GenerateEnergy(amount) effect.
func GenerateEnergy(amount units.Energy) Effect {
	return Effect{Kind: EffectKindGenerateEnergy, GenerateEnergy: amount}
}

// MultiEffect constructs an effect applying each of effects in order.
func MultiEffect(effects ...Effect) Effect {
	return Effect{Kind: EffectKindMultiEffect, MultiEffect: effects}
}

// ApplyCondition constructs an effect that attaches cond for the given duration.
func ApplyCondition(d Duration, cond Condition) Effect {
	return Effect{Kind: EffectKindApplyCondition, ApplyConditionDuration: d, ApplyConditionCondition: cond}
}
