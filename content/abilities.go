// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ironmoor/tactics/condition"
	"github.com/ironmoor/tactics/dice"
	"github.com/ironmoor/tactics/game"
	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/units"
)

// DurationSpec is the YAML shape of a condition.Duration.
type DurationSpec struct {
	Kind   string `yaml:"kind"` // "interminate" or "rounds"
	Rounds uint8  `yaml:"rounds"`
}

func (s DurationSpec) compile() (condition.Duration, error) {
	switch s.Kind {
	case "", "interminate":
		return condition.Interminate(), nil
	case "rounds":
		return condition.RoundsRemaining(s.Rounds), nil
	default:
		return condition.Duration{}, fmt.Errorf("content: unknown duration kind %q", s.Kind)
	}
}

// ConditionSpec is the YAML shape of a condition.Condition. Only the
// fields relevant to Kind are read.
type ConditionSpec struct {
	Kind            string     `yaml:"kind"`
	AddDamageBuff   int32      `yaml:"add_damage_buff"`
	ActivateAbility string     `yaml:"activate_ability"` // ability name, resolved against the loaded table
	RecurringEffect *EffectSpec `yaml:"recurring_effect"`
}

func (s ConditionSpec) compile(abilities *AbilityTable) (condition.Condition, error) {
	switch condition.Kind(s.Kind) {
	case condition.KindDead:
		return condition.Dead(), nil
	case condition.KindIncapacitated:
		return condition.Incapacitated(), nil
	case condition.KindAddDamageBuff:
		return condition.AddDamageBuff(units.HP(s.AddDamageBuff)), nil
	case condition.KindDoubleMaxMovement:
		return condition.DoubleMaxMovement(), nil
	case condition.KindActivateAbility:
		ab, ok := abilities.ByName(s.ActivateAbility)
		if !ok {
			return condition.Condition{}, fmt.Errorf("content: activate_ability references unknown ability %q", s.ActivateAbility)
		}
		return condition.ActivateAbilityCondition(ab.ID), nil
	case condition.KindRecurringEffect:
		if s.RecurringEffect == nil {
			return condition.Condition{}, fmt.Errorf("content: recurring_effect condition missing recurring_effect body")
		}
		e, err := s.RecurringEffect.compile(abilities)
		if err != nil {
			return condition.Condition{}, err
		}
		return condition.RecurringEffectCondition(e), nil
	default:
		return condition.Condition{}, fmt.Errorf("content: unknown condition kind %q", s.Kind)
	}
}

// EffectSpec is the YAML shape of a condition.Effect: a recursive
// tagged union mirroring the runtime type, but with dice written as
// plain notation strings and nested conditions/effects as specs.
type EffectSpec struct {
	Kind string `yaml:"kind"`

	Dice           string `yaml:"dice"`
	GenerateEnergy int32  `yaml:"generate_energy"`

	Effects []EffectSpec `yaml:"effects"` // multi_effect

	Duration  DurationSpec  `yaml:"duration"`
	Condition ConditionSpec `yaml:"condition"`
}

func (s EffectSpec) compile(abilities *AbilityTable) (condition.Effect, error) {
	switch condition.EffectKind(s.Kind) {
	case condition.EffectKindDamage:
		pool, err := dice.ParseNotation(s.Dice)
		if err != nil {
			return condition.Effect{}, fmt.Errorf("content: damage effect: %w", err)
		}
		return condition.Damage(pool), nil
	case condition.EffectKindHeal:
		pool, err := dice.ParseNotation(s.Dice)
		if err != nil {
			return condition.Effect{}, fmt.Errorf("content: heal effect: %w", err)
		}
		return condition.Heal(pool), nil
	case condition.EffectKindGenerateEnergy:
		return condition.GenerateEnergy(units.Energy(s.GenerateEnergy)), nil
	case condition.EffectKindMultiEffect:
		compiled := make([]condition.Effect, 0, len(s.Effects))
		for _, sub := range s.Effects {
			e, err := sub.compile(abilities)
			if err != nil {
				return condition.Effect{}, err
			}
			compiled = append(compiled, e)
		}
		return condition.MultiEffect(compiled...), nil
	case condition.EffectKindApplyCondition:
		d, err := s.Duration.compile()
		if err != nil {
			return condition.Effect{}, err
		}
		c, err := s.Condition.compile(abilities)
		if err != nil {
			return condition.Effect{}, err
		}
		return condition.ApplyCondition(d, c), nil
	default:
		return condition.Effect{}, fmt.Errorf("content: unknown effect kind %q", s.Kind)
	}
}

// AbilitySpec is the YAML shape of one game.Ability.
type AbilitySpec struct {
	Name       string     `yaml:"name"`
	EnergyCost int32      `yaml:"energy_cost"`
	RangeCM    uint32     `yaml:"range_cm"`
	TargetSpec string     `yaml:"target_spec"` // "none", "creature", "point"
	Effect     EffectSpec `yaml:"effect"`
}

type abilityListFile struct {
	Abilities []AbilitySpec `yaml:"abilities"`
}

// AbilityTable holds every ability loaded from one YAML file, indexed
// both by its minted id and by its authoring name (abilities reference
// each other by name before ids exist).
type AbilityTable struct {
	byID   *id.Indexed[id.AbilityID, game.Ability]
	byName map[string]game.Ability
}

// ByName returns the compiled ability registered under name.
func (t *AbilityTable) ByName(name string) (game.Ability, bool) {
	a, ok := t.byName[name]
	return a, ok
}

// All returns every compiled ability, keyed by its minted id.
func (t *AbilityTable) All() []game.Ability {
	return t.byID.Values()
}

// LoadAbilityTable reads path, compiling every ability spec in
// declaration order so later specs may reference earlier ones by name
// via activate_ability (an ability can't reference a later sibling or
// itself — a restriction accepted in exchange for single-pass loading).
func LoadAbilityTable(path string) (*AbilityTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read abilities %s: %w", path, err)
	}
	var f abilityListFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("content: parse abilities %s: %w", path, err)
	}

	t := &AbilityTable{
		byID:   id.NewIndexed[id.AbilityID, game.Ability](),
		byName: map[string]game.Ability{},
	}
	for _, spec := range f.Abilities {
		effect, err := spec.Effect.compile(t)
		if err != nil {
			return nil, fmt.Errorf("content: ability %q: %w", spec.Name, err)
		}
		ab := game.Ability{
			ID:         id.NewAbilityID(),
			Name:       spec.Name,
			EnergyCost: units.Energy(spec.EnergyCost),
			Range:      units.Cm(spec.RangeCM),
			TargetSpec: game.TargetSpecKind(spec.TargetSpec),
			Effect:     effect,
		}
		t.byID.Insert(ab)
		t.byName[spec.Name] = ab
	}
	return t, nil
}
