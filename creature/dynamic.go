// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package creature

import (
	"github.com/ironmoor/tactics/condition"
	"github.com/ironmoor/tactics/dice"
	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/units"
)

// ClassLookup resolves a class by name. Game implements this so
// DynamicCreature can read class-inherited conditions and abilities
// without creature importing game (which would cycle back).
type ClassLookup interface {
	ClassByName(name string) (Class, bool)
}

// VolumeConditionSource supplies the volume-conditions currently
// overlapping a creature's position, when that creature is in the
// scene of an active combat. Game implements this via scene+combat.
type VolumeConditionSource interface {
	VolumeConditionsFor(cid id.CreatureID) []condition.AppliedCondition
}

// View bundles the lookups a DynamicCreature needs from its owning game.
type View interface {
	ClassLookup
	VolumeConditionSource
}

// DynamicCreature is a read-only projection over a Creature and its
// owning game: computed conditions (stored + class-inherited +
// overlapping volume conditions), computed speed, and turn eligibility.
type DynamicCreature struct {
	Creature Creature
	game     View
}

// NewDynamicCreature builds a DynamicCreature view over c using game
// for class and volume-condition lookups.
func NewDynamicCreature(c Creature, game View) DynamicCreature {
	return DynamicCreature{Creature: c, game: game}
}

// Conditions returns the union of stored conditions, the creature's
// class-inherited conditions (as Interminate), and — if the creature
// is in an active combat's scene — every overlapping volume condition.
func (d DynamicCreature) Conditions() []condition.AppliedCondition {
	out := make([]condition.AppliedCondition, 0, len(d.Creature.Conditions))
	for _, ac := range d.Creature.Conditions {
		out = append(out, ac)
	}

	if cls, ok := d.game.ClassByName(d.Creature.ClassName); ok {
		for _, c := range cls.InheritedConditions {
			out = append(out, condition.AppliedCondition{
				ID:        id.NewConditionID(),
				Condition: c,
				Duration:  condition.Interminate(),
			})
		}
	}

	out = append(out, d.game.VolumeConditionsFor(d.Creature.ID)...)

	return out
}

// Speed returns base speed plus one extra base-speed increment per
// active DoubleMaxMovement condition.
func (d DynamicCreature) Speed() (speed int64) {
	base := d.Creature.Speed.Centimeters()
	total := base
	for _, ac := range d.Conditions() {
		if ac.Condition.Kind == condition.KindDoubleMaxMovement {
			total += base
		}
	}
	return total
}

// CanAct reports whether the creature is free to take an action: no
// active Dead or Incapacitated condition.
func (d DynamicCreature) CanAct() bool {
	return !d.hasBlockingCondition()
}

// CanMove reports whether the creature is free to move. Identical to
// CanAct: Dead and Incapacitated both block movement too.
func (d DynamicCreature) CanMove() bool {
	return !d.hasBlockingCondition()
}

func (d DynamicCreature) hasBlockingCondition() bool {
	for _, ac := range d.Conditions() {
		if ac.Condition.Kind == condition.KindDead || ac.Condition.Kind == condition.KindIncapacitated {
			return true
		}
	}
	return false
}

// AbilityStatuses returns the union (last-writer-wins) of abilities
// activated by ActivateAbility conditions, class abilities, and
// creature-owned abilities.
func (d DynamicCreature) AbilityStatuses() []AbilityStatus {
	merged := map[id.AbilityID]AbilityStatus{}

	if cls, ok := d.game.ClassByName(d.Creature.ClassName); ok {
		for _, abid := range cls.Abilities {
			merged[abid] = AbilityStatus{AbilityID: abid}
		}
	}

	for _, ac := range d.Conditions() {
		if ac.Condition.Kind == condition.KindActivateAbility {
			abid := ac.Condition.ActivateAbility
			merged[abid] = AbilityStatus{AbilityID: abid}
		}
	}

	for _, status := range d.Creature.Abilities.Values() {
		merged[status.AbilityID] = status
	}

	out := make([]AbilityStatus, 0, len(merged))
	for _, s := range merged {
		out = append(out, s)
	}
	return out
}

// TickEventKind tags the log-shaped side effect a Tick step produces.
// creature has no notion of GameLog; game translates these into the
// concrete log variants it owns.
type TickEventKind string

const (
	TickEventDecrementCondition TickEventKind = "decrement_condition"
	TickEventRemoveCondition    TickEventKind = "remove_condition"
	TickEventApplyCondition     TickEventKind = "apply_condition"
)

// TickEvent is one emitted side effect of a Tick call.
type TickEvent struct {
	Kind           TickEventKind
	ConditionID    id.ConditionID
	NewConditionID id.ConditionID
	AppliedCond    condition.AppliedCondition
}

// TickResult is the outcome of ticking one creature for one turn.
type TickResult struct {
	Creature Creature
	Events   []TickEvent
}

// Tick processes one turn of the creature's conditions, in order:
//  1. every active RecurringEffect with a positive remaining duration
//     (or Interminate) applies its effect to the accumulating creature.
//  2. every condition on the post-effect creature is then ticked: an
//     Interminate duration is left alone, Rounds(n>0) emits a decrement,
//     Rounds(0) emits a removal.
//
// If step 1 drops the creature to zero HP, a Dead/Interminate
// condition application is additionally emitted.
func Tick(d DynamicCreature, roller dice.Roller) TickResult {
	c := d.Creature
	var events []TickEvent

	for _, ac := range d.Conditions() {
		if ac.Condition.Kind != condition.KindRecurringEffect {
			continue
		}
		if ac.Duration.Kind == condition.DurationKindRounds && ac.Duration.Rounds == 0 {
			continue
		}
		c, events = applyEffect(c, ac.Condition.RecurringEffect, roller, events)
	}

	for condID, ac := range c.Conditions {
		switch {
		case ac.Duration.Kind == condition.DurationKindInterminate:
			// leave it
		case ac.Duration.Rounds > 0:
			events = append(events, TickEvent{Kind: TickEventDecrementCondition, ConditionID: condID})
		default:
			events = append(events, TickEvent{Kind: TickEventRemoveCondition, ConditionID: condID})
		}
	}

	if c.CurHP.IsZero() && !d.Creature.CurHP.IsZero() {
		events = append(events, TickEvent{
			Kind: TickEventApplyCondition,
			AppliedCond: condition.AppliedCondition{
				ID:        id.NewConditionID(),
				Condition: condition.Dead(),
				Duration:  condition.Interminate(),
			},
		})
	}

	return TickResult{Creature: c, Events: events}
}

func applyEffect(c Creature, e condition.Effect, roller dice.Roller, events []TickEvent) (Creature, []TickEvent) {
	switch e.Kind {
	case condition.EffectKindDamage:
		result := e.Dice.Roll(roller)
		return c.WithDamage(units.HP(result.Total())), events
	case condition.EffectKindHeal:
		result := e.Dice.Roll(roller)
		return c.WithHeal(units.HP(result.Total())), events
	case condition.EffectKindGenerateEnergy:
		return c.WithEnergyDelta(int32(e.GenerateEnergy)), events
	case condition.EffectKindMultiEffect:
		for _, sub := range e.MultiEffect {
			c, events = applyEffect(c, sub, roller, events)
		}
		return c, events
	case condition.EffectKindApplyCondition:
		events = append(events, TickEvent{
			Kind: TickEventApplyCondition,
			AppliedCond: condition.AppliedCondition{
				ID:        id.NewConditionID(),
				Condition: e.ApplyConditionCondition,
				Duration:  e.ApplyConditionDuration,
			},
		})
		return c, events
	default:
		return c, events
	}
}
