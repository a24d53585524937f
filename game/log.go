// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package game

import (
	"github.com/ironmoor/tactics/condition"
	"github.com/ironmoor/tactics/creature"
	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/scene"
	"github.com/ironmoor/tactics/units"
)

// LogKind tags a GameLog's variant. Every nested *Log field below is
// only meaningful when Kind names it; this is the engine's sum type
// for primitive state transitions.
type LogKind string

const (
	LogCreateCreature          LogKind = "create_creature"
	LogRemoveCreature          LogKind = "remove_creature"
	LogAttributeCheckResult    LogKind = "attribute_check_result"
	LogEditCreature            LogKind = "edit_creature"
	LogSetCreaturePos          LogKind = "set_creature_pos"
	LogPathCreature            LogKind = "path_creature"
	LogStartCombat             LogKind = "start_combat"
	LogStopCombat              LogKind = "stop_combat"
	LogAddCreatureToCombat     LogKind = "add_creature_to_combat"
	LogRemoveCreatureFromCombat LogKind = "remove_creature_from_combat"
	LogCombatLog               LogKind = "combat_log"
	LogCreatureLog             LogKind = "creature_log"
	LogSceneLog                LogKind = "scene_log"
	LogRollback                LogKind = "rollback"
	LogCreateScene             LogKind = "create_scene"
	LogEditScene               LogKind = "edit_scene"
	LogCreateFolder            LogKind = "create_folder"
)

// GameLog is a single immutable primitive mutation: the only way Game
// state changes. ApplyLog folds one of these into a Game, producing a
// fresh value with no I/O and no RNG.
type GameLog struct {
	Kind LogKind

	Creature creature.Creature // CreateCreature
	CreatureID id.CreatureID   // RemoveCreature, AddCreatureToCombat, RemoveCreatureFromCombat

	AttributeCheckName   string // AttributeCheckResult
	AttributeCheckResult int    // AttributeCheckResult

	EditCreature EditCreature // EditCreature

	SceneID id.SceneID  // SetCreaturePos, PathCreature, StartCombat, CreateScene target (embedded), EditScene
	Point   units.Point3 // SetCreaturePos
	Path    []units.Point3 // PathCreature

	Initiative []id.CreatureID // StartCombat

	CombatLog CombatLog // CombatLog

	CreatureLogCreatureID id.CreatureID // CreatureLog target
	CreatureLogEntry      CreatureLog   // CreatureLog

	SceneLogSceneID id.SceneID // SceneLog target
	SceneLogEntry   SceneLog   // SceneLog

	RollbackSnapshotIdx int // Rollback
	RollbackLogIdx      int // Rollback

	Scene scene.Scene // CreateScene

	EditScene EditScene // EditScene
}

// EditCreature carries the optional field edits EditCreature may apply.
type EditCreature struct {
	Name *string
	Bio  *string
	Notes *string
}

// EditScene carries the optional field edits EditScene may apply.
type EditScene struct {
	Name       *string
	Background *string
}

// CombatLogKind tags a CombatLog's variant.
type CombatLogKind string

const (
	CombatLogNextTurn       CombatLogKind = "next_turn"
	CombatLogSpendMovement  CombatLogKind = "spend_movement"
)

// CombatLog is a primitive mutation of the current combat.
type CombatLog struct {
	Kind CombatLogKind

	ActingSpeed units.Distance // NextTurn
	Cost        units.Distance // SpendMovement
}

// CreatureLogKind tags a CreatureLog's variant.
type CreatureLogKind string

const (
	CreatureLogDamage             CreatureLogKind = "damage"
	CreatureLogHeal               CreatureLogKind = "heal"
	CreatureLogEnergyDelta        CreatureLogKind = "energy_delta"
	CreatureLogApplyCondition     CreatureLogKind = "apply_condition"
	CreatureLogDecrementCondition CreatureLogKind = "decrement_condition"
	CreatureLogRemoveCondition    CreatureLogKind = "remove_condition"
)

// CreatureLog is a primitive mutation of a single creature's stats or conditions.
type CreatureLog struct {
	Kind CreatureLogKind

	Amount          units.HP          // Damage, Heal
	EnergyDelta     int32             // EnergyDelta
	AppliedCond     condition.AppliedCondition // ApplyCondition
	ConditionID     id.ConditionID    // DecrementCondition, RemoveCondition
}

// SceneLogKind tags a SceneLog's variant.
type SceneLogKind string

const (
	SceneLogAddCreature          SceneLogKind = "add_creature"
	SceneLogRemoveCreature       SceneLogKind = "remove_creature"
	SceneLogSetTerrain           SceneLogKind = "set_terrain"
	SceneLogAddVolumeCondition   SceneLogKind = "add_volume_condition"
	SceneLogRemoveVolumeCondition SceneLogKind = "remove_volume_condition"
)

// SceneLog is a primitive mutation of a single scene.
type SceneLog struct {
	Kind SceneLogKind

	CreatureID id.CreatureID     // AddCreature, RemoveCreature
	Point      units.Point3      // AddCreature, SetTerrain
	Visibility scene.Visibility  // AddCreature
	Open       bool              // SetTerrain

	ConditionID      id.ConditionID    // AddVolumeCondition, RemoveVolumeCondition
	VolumeCondition  scene.VolumeCondition // AddVolumeCondition
}
