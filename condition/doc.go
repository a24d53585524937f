// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package condition defines Condition, Effect, Duration and
// AppliedCondition as pure tagged-union data — no event bus, no
// behavior attached. A Condition is inert until something (creature
// tick, ability resolution) matches on its Kind and acts; this keeps
// them trivially serializable and replayable from logs.
//
// Scope:
//   - Condition: Dead, Incapacitated, AddDamageBuff, DoubleMaxMovement,
//     ActivateAbility, RecurringEffect.
//   - Effect: Damage, Heal, GenerateEnergy, MultiEffect, ApplyCondition.
//   - Duration: Interminate or Rounds(n), with the decrement/expiry
//     rules the creature tick depends on.
//
// Non-Goals:
//   - Applying effects to a creature: that's mechanics creature.Tick
//     owns, since it needs the owning Game to resolve ids.
package condition
