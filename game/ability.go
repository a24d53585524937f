// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package game

import (
	"github.com/ironmoor/tactics/condition"
	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/units"
)

// TargetSpecKind tags what kind of target an Ability expects.
type TargetSpecKind string

const (
	TargetSpecNone     TargetSpecKind = "none"
	TargetSpecCreature TargetSpecKind = "creature"
	TargetSpecPoint    TargetSpecKind = "point"
)

// Ability is a targetable effect a creature can invoke: its energy
// cost, range, the kind of target it expects, and the Effect it
// resolves against that target.
type Ability struct {
	ID         id.AbilityID
	Name       string
	EnergyCost units.Energy
	Range      units.Distance
	TargetSpec TargetSpecKind
	Effect     condition.Effect
}

// Key implements id.Keyed.
func (a Ability) Key() id.AbilityID { return a.ID }

// DecidedTargetKind tags a DecidedTarget's variant.
type DecidedTargetKind string

const (
	DecidedTargetNone     DecidedTargetKind = "none"
	DecidedTargetCreature DecidedTargetKind = "creature"
	DecidedTargetPoint    DecidedTargetKind = "point"
)

// DecidedTarget is the caller's chosen target for an ability
// invocation: a tagged union matching TargetSpecKind.
type DecidedTarget struct {
	Kind       DecidedTargetKind
	CreatureID id.CreatureID
	Point      units.Point3
}

// Matches reports whether t satisfies spec.
func (t DecidedTarget) Matches(spec TargetSpecKind) bool {
	switch spec {
	case TargetSpecNone:
		return t.Kind == DecidedTargetNone
	case TargetSpecCreature:
		return t.Kind == DecidedTargetCreature
	case TargetSpecPoint:
		return t.Kind == DecidedTargetPoint
	default:
		return false
	}
}
