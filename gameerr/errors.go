// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package gameerr provides the engine's structured error type. Every
// command-handling failure surfaces as a *gameerr.Error carrying a
// stable Code plus whatever ids explain the failure, so a caller can
// switch on Code without string-matching a message and a BuggyProgram
// carries full context instead of panicking.
package gameerr

import (
	"errors"
	"fmt"

	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/units"
)

// Code identifies the kind of failure a GameError represents.
type Code string

const (
	// CodePlayerAlreadyExists: RegisterPlayer for an already-registered id.
	CodePlayerAlreadyExists Code = "player_already_exists"
	// CodePlayerNotFound: a player id has no registered player.
	CodePlayerNotFound Code = "player_not_found"
	// CodeCreatureNotFound: a creature id is absent from Game.creatures.
	CodeCreatureNotFound Code = "creature_not_found"
	// CodeSceneNotFound: a scene id is absent from Game.scenes.
	CodeSceneNotFound Code = "scene_not_found"
	// CodeAbilityNotFound: an ability id is absent from Game.abilities.
	CodeAbilityNotFound Code = "ability_not_found"
	// CodeClassNotFound: a class name is absent from Game.classes.
	CodeClassNotFound Code = "class_not_found"
	// CodeConditionNotFound: a condition id is absent on a creature.
	CodeConditionNotFound Code = "condition_not_found"
	// CodeAttributeNotFound: an attribute id is absent on a creature.
	CodeAttributeNotFound Code = "attribute_not_found"
	// CodeNotEnoughEnergy: a creature lacks the energy an ability costs.
	CodeNotEnoughEnergy Code = "not_enough_energy"
	// CodeCreatureLacksAbility: a creature attempted an ability it doesn't have.
	CodeCreatureLacksAbility Code = "creature_lacks_ability"
	// CodeCreatureOutOfRange: the acting creature is out of range of its target.
	CodeCreatureOutOfRange Code = "creature_out_of_range"
	// CodeTargetOutOfRange: the chosen target is out of the ability's range.
	CodeTargetOutOfRange Code = "target_out_of_range"
	// CodeInvalidTargetForTargetSpec: the decided target doesn't match the ability's target spec.
	CodeInvalidTargetForTargetSpec Code = "invalid_target_for_target_spec"
	// CodeCombatMustHaveCreatures: StartCombat was given an empty roster.
	CodeCombatMustHaveCreatures Code = "combat_must_have_creatures"
	// CodeAlreadyInCombat: StartCombat while a combat is already running.
	CodeAlreadyInCombat Code = "already_in_combat"
	// CodeNotInCombat: a combat-only command issued with no active combat.
	CodeNotInCombat Code = "not_in_combat"
	// CodeNotYourTurn: an acting creature tried to act out of initiative order.
	CodeNotYourTurn Code = "not_your_turn"
	// CodeHistoryNotFound: a Rollback referenced a missing snapshot/log index.
	CodeHistoryNotFound Code = "history_not_found"
	// CodeBuggyProgram: an internal invariant was violated. Reported, not panicked.
	CodeBuggyProgram Code = "buggy_program"
)

// Error is the engine's structured error: a stable Code plus whatever
// context explains it, and an optional wrapped Cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "gameerr: nil error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Option configures an *Error at construction time.
type Option func(*Error)

// WithMeta attaches a context key/value pair to the error.
func WithMeta(key string, value any) Option {
	return func(e *Error) {
		if e.Meta == nil {
			e.Meta = map[string]any{}
		}
		e.Meta[key] = value
	}
}

// WithCause wraps an underlying error.
func WithCause(cause error) Option {
	return func(e *Error) { e.Cause = cause }
}

// New constructs an *Error with the given code and message.
func New(code Code, message string, opts ...Option) *Error {
	e := &Error{Code: code, Message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Newf is New with fmt.Sprintf-style formatting of the message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// GetCode extracts the Code from err, or Code("unknown") if err is not a *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return "unknown"
}

// Is reports whether err is a *Error carrying exactly code.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// Domain constructors. Each maps directly to a GameError variant named
// in the engine's error vocabulary.

func PlayerAlreadyExists(pid id.PlayerID) *Error {
	return New(CodePlayerAlreadyExists, fmt.Sprintf("player %s already exists", pid), WithMeta("player_id", pid))
}

func PlayerNotFound(pid id.PlayerID) *Error {
	return New(CodePlayerNotFound, fmt.Sprintf("player %s not found", pid), WithMeta("player_id", pid))
}

func CreatureNotFound(cid id.CreatureID) *Error {
	return New(CodeCreatureNotFound, fmt.Sprintf("creature %s not found", cid), WithMeta("creature_id", cid))
}

func SceneNotFound(sid id.SceneID) *Error {
	return New(CodeSceneNotFound, fmt.Sprintf("scene %s not found", sid), WithMeta("scene_id", sid))
}

func AbilityNotFound(abid id.AbilityID) *Error {
	return New(CodeAbilityNotFound, fmt.Sprintf("ability %s not found", abid), WithMeta("ability_id", abid))
}

func ClassNotFound(name string) *Error {
	return New(CodeClassNotFound, fmt.Sprintf("class %q not found", name), WithMeta("class", name))
}

func ConditionNotFound(cid id.CreatureID, condID id.ConditionID) *Error {
	return New(CodeConditionNotFound,
		fmt.Sprintf("condition %s not found on creature %s", condID, cid),
		WithMeta("creature_id", cid), WithMeta("condition_id", condID))
}

func AttributeNotFound(cid id.CreatureID, attr id.AttrID) *Error {
	return New(CodeAttributeNotFound,
		fmt.Sprintf("attribute %s not found on creature %s", attr, cid),
		WithMeta("creature_id", cid), WithMeta("attr_id", attr))
}

func NotEnoughEnergy(need units.Energy) *Error {
	return New(CodeNotEnoughEnergy, fmt.Sprintf("not enough energy: need %d", need), WithMeta("need", need))
}

func CreatureLacksAbility(cid id.CreatureID, abid id.AbilityID) *Error {
	return New(CodeCreatureLacksAbility,
		fmt.Sprintf("creature %s lacks ability %s", cid, abid),
		WithMeta("creature_id", cid), WithMeta("ability_id", abid))
}

func CreatureOutOfRange() *Error {
	return New(CodeCreatureOutOfRange, "acting creature is out of range")
}

func TargetOutOfRange() *Error {
	return New(CodeTargetOutOfRange, "target is out of range")
}

func InvalidTargetForTargetSpec() *Error {
	return New(CodeInvalidTargetForTargetSpec, "decided target does not satisfy the ability's target spec")
}

func CombatMustHaveCreatures() *Error {
	return New(CodeCombatMustHaveCreatures, "combat must start with at least one creature")
}

func AlreadyInCombat() *Error {
	return New(CodeAlreadyInCombat, "a combat is already active")
}

func NotInCombat() *Error {
	return New(CodeNotInCombat, "no combat is currently active")
}

func NotYourTurn(cid id.CreatureID) *Error {
	return New(CodeNotYourTurn, fmt.Sprintf("it is not creature %s's turn", cid), WithMeta("creature_id", cid))
}

func HistoryNotFound(snapshotIdx, logIdx int) *Error {
	return New(CodeHistoryNotFound,
		fmt.Sprintf("no history at snapshot %d, log %d", snapshotIdx, logIdx),
		WithMeta("snapshot_idx", snapshotIdx), WithMeta("log_idx", logIdx))
}

// BuggyProgram reports a violated internal invariant. It is always the
// result of an engine bug, never of bad caller input, so it carries
// the offending context in Meta for logging rather than a panic.
func BuggyProgram(msg string, opts ...Option) *Error {
	return New(CodeBuggyProgram, "buggy program: "+msg, opts...)
}
