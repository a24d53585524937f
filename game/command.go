// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package game

import (
	"github.com/ironmoor/tactics/condition"
	"github.com/ironmoor/tactics/creature"
	"github.com/ironmoor/tactics/dice"
	"github.com/ironmoor/tactics/gameerr"
	"github.com/ironmoor/tactics/grid"
	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/scene"
	"github.com/ironmoor/tactics/units"
)

// CommandKind tags a GameCommand's variant.
type CommandKind string

const (
	CommandRegisterPlayer            CommandKind = "register_player"
	CommandUnregisterPlayer          CommandKind = "unregister_player"
	CommandGiveCreaturesToPlayer     CommandKind = "give_creatures_to_player"
	CommandRemoveCreaturesFromPlayer CommandKind = "remove_creatures_from_player"
	CommandSetPlayerScene            CommandKind = "set_player_scene"
	CommandCreateCreature            CommandKind = "create_creature"
	CommandRemoveCreature            CommandKind = "remove_creature"
	CommandEditCreature              CommandKind = "edit_creature"
	CommandSetCreaturePos            CommandKind = "set_creature_pos"
	CommandPathCreature              CommandKind = "path_creature"
	CommandCreateScene               CommandKind = "create_scene"
	CommandEditScene                 CommandKind = "edit_scene"
	CommandStartCombat               CommandKind = "start_combat"
	CommandStopCombat                CommandKind = "stop_combat"
	CommandCombatAct                 CommandKind = "combat_act"
	CommandActCreature               CommandKind = "act_creature"
	CommandDone                      CommandKind = "done"
)

// GameCommand is a user-requested operation; handling one may produce
// several GameLogs (or, for meta commands, none at all).
type GameCommand struct {
	Kind CommandKind

	PlayerID   id.PlayerID    // RegisterPlayer, UnregisterPlayer, Give/RemoveCreaturesToPlayer, SetPlayerScene
	CreatureIDs []id.CreatureID // GiveCreaturesToPlayer, RemoveCreaturesFromPlayer, StartCombat
	SceneID    *id.SceneID    // SetPlayerScene (nil clears focus)

	NewCreature creature.Creature // CreateCreature
	CreatureID  id.CreatureID     // RemoveCreature, EditCreature, SetCreaturePos, PathCreature, CombatAct, ActCreature

	Edit EditCreature // EditCreature

	Target  units.Point3 // SetCreaturePos, PathCreature destination
	Scene   scene.Scene  // CreateScene
	EditSceneFields EditScene // EditScene

	CombatSceneID id.SceneID // StartCombat

	AbilityID     id.AbilityID  // CombatAct, ActCreature
	DecidedTarget DecidedTarget // CombatAct, ActCreature
	ActingSceneID id.SceneID    // SetCreaturePos, PathCreature, EditScene, ActCreature (scene the command acts in)
}

// PerformUnchecked validates cmd's preconditions, rolls dice / mints
// ids using roller, and returns the resulting Game plus the logs that
// describe the transition: the returned Game always equals folding
// ApplyLog over the returned logs starting from the receiver. Meta
// commands (player-index bookkeeping) mutate Players directly and
// return no logs. This is the only place RNG or id generation is
// consulted; subsequent ApplyLog replay is purely deterministic.
func (g Game) PerformUnchecked(cmd GameCommand, roller dice.Roller) (Game, []GameLog, error) {
	next, logs, err := g.performUnchecked(cmd, roller)
	if err != nil {
		return g, nil, err
	}
	for _, l := range logs {
		next = ApplyLog(next, l)
	}
	return next, logs, nil
}

func (g Game) performUnchecked(cmd GameCommand, roller dice.Roller) (Game, []GameLog, error) {
	switch cmd.Kind {
	case CommandRegisterPlayer:
		if g.Players.Contains(cmd.PlayerID) {
			return g, nil, gameerr.PlayerAlreadyExists(cmd.PlayerID)
		}
		next := g.clone()
		next.Players.Insert(Player{ID: cmd.PlayerID})
		return next, nil, nil

	case CommandUnregisterPlayer:
		if !g.Players.Contains(cmd.PlayerID) {
			return g, nil, gameerr.PlayerNotFound(cmd.PlayerID)
		}
		next := g.clone()
		next.Players.Remove(cmd.PlayerID)
		return next, nil, nil

	case CommandGiveCreaturesToPlayer:
		if !g.Players.Contains(cmd.PlayerID) {
			return g, nil, gameerr.PlayerNotFound(cmd.PlayerID)
		}
		next := g.clone()
		next.Players.Mutate(cmd.PlayerID, func(p Player) Player { return p.withGrantedCreatures(cmd.CreatureIDs) })
		return next, nil, nil

	case CommandRemoveCreaturesFromPlayer:
		if !g.Players.Contains(cmd.PlayerID) {
			return g, nil, gameerr.PlayerNotFound(cmd.PlayerID)
		}
		next := g.clone()
		next.Players.Mutate(cmd.PlayerID, func(p Player) Player { return p.withoutCreatures(cmd.CreatureIDs) })
		return next, nil, nil

	case CommandSetPlayerScene:
		if !g.Players.Contains(cmd.PlayerID) {
			return g, nil, gameerr.PlayerNotFound(cmd.PlayerID)
		}
		next := g.clone()
		next.Players.Mutate(cmd.PlayerID, func(p Player) Player { return p.withFocusedScene(cmd.SceneID) })
		return next, nil, nil

	case CommandCreateCreature:
		c := cmd.NewCreature
		if c.ID == "" {
			c.ID = id.NewCreatureID()
		}
		logs := []GameLog{{Kind: LogCreateCreature, Creature: c}}
		return g, logs, nil

	case CommandRemoveCreature:
		if !g.Creatures.Contains(cmd.CreatureID) {
			return g, nil, gameerr.CreatureNotFound(cmd.CreatureID)
		}
		return g, []GameLog{{Kind: LogRemoveCreature, CreatureID: cmd.CreatureID}}, nil

	case CommandEditCreature:
		if !g.Creatures.Contains(cmd.CreatureID) {
			return g, nil, gameerr.CreatureNotFound(cmd.CreatureID)
		}
		return g, []GameLog{{Kind: LogEditCreature, CreatureID: cmd.CreatureID, EditCreature: cmd.Edit}}, nil

	case CommandSetCreaturePos:
		if _, ok := g.Scenes.Get(cmd.ActingSceneID); !ok {
			return g, nil, gameerr.SceneNotFound(cmd.ActingSceneID)
		}
		if !g.Creatures.Contains(cmd.CreatureID) {
			return g, nil, gameerr.CreatureNotFound(cmd.CreatureID)
		}
		return g, []GameLog{{
			Kind: LogSetCreaturePos, SceneID: cmd.ActingSceneID, CreatureID: cmd.CreatureID, Point: cmd.Target,
		}}, nil

	case CommandPathCreature:
		return g.performPathCreature(cmd)

	case CommandCreateScene:
		s := cmd.Scene
		if s.ID == "" {
			s = scene.New(s.Name)
		}
		return g, []GameLog{{Kind: LogCreateScene, Scene: s}}, nil

	case CommandEditScene:
		if _, ok := g.Scenes.Get(cmd.ActingSceneID); !ok {
			return g, nil, gameerr.SceneNotFound(cmd.ActingSceneID)
		}
		return g, []GameLog{{Kind: LogEditScene, SceneID: cmd.ActingSceneID, EditScene: cmd.EditSceneFields}}, nil

	case CommandStartCombat:
		if g.CurrentCombat != nil {
			return g, nil, gameerr.AlreadyInCombat()
		}
		if len(cmd.CreatureIDs) == 0 {
			return g, nil, gameerr.CombatMustHaveCreatures()
		}
		if _, ok := g.Scenes.Get(cmd.CombatSceneID); !ok {
			return g, nil, gameerr.SceneNotFound(cmd.CombatSceneID)
		}
		return g, []GameLog{{Kind: LogStartCombat, SceneID: cmd.CombatSceneID, Initiative: cmd.CreatureIDs}}, nil

	case CommandStopCombat:
		if g.CurrentCombat == nil {
			return g, nil, gameerr.NotInCombat()
		}
		return g, []GameLog{{Kind: LogStopCombat}}, nil

	case CommandDone:
		return g.performDone()

	case CommandCombatAct:
		return g.performAct(cmd, roller, true)

	case CommandActCreature:
		return g.performAct(cmd, roller, false)

	default:
		return g, nil, gameerr.BuggyProgram("unhandled command kind")
	}
}

func (g Game) performPathCreature(cmd GameCommand) (Game, []GameLog, error) {
	s, ok := g.Scenes.Get(cmd.ActingSceneID)
	if !ok {
		return g, nil, gameerr.SceneNotFound(cmd.ActingSceneID)
	}
	c, ok := g.Creatures.Get(cmd.CreatureID)
	if !ok {
		return g, nil, gameerr.CreatureNotFound(cmd.CreatureID)
	}
	start, ok := s.GetPos(cmd.CreatureID)
	if !ok {
		return g, nil, gameerr.CreatureNotFound(cmd.CreatureID)
	}

	speed := c.Speed
	if g.CurrentCombat != nil && g.CurrentCombat.SceneID == cmd.ActingSceneID && g.CurrentCombat.CurrentCreature() == cmd.CreatureID {
		speed = g.CurrentCombat.MovementBudget
	}

	res, found := grid.FindPath(g.TileSystem, start, speed, s.Terrain, c.Size, cmd.Target)
	if !found {
		return g, nil, gameerr.CreatureOutOfRange()
	}

	logs := []GameLog{{Kind: LogPathCreature, SceneID: cmd.ActingSceneID, CreatureID: cmd.CreatureID, Path: res.Path}}
	if g.CurrentCombat != nil && g.CurrentCombat.SceneID == cmd.ActingSceneID && g.CurrentCombat.CurrentCreature() == cmd.CreatureID {
		logs = append(logs, GameLog{Kind: LogCombatLog, CombatLog: CombatLog{Kind: CombatLogSpendMovement, Cost: res.Cost}})
	}
	return g, logs, nil
}

// performDone advances the current combat to the next turn, baking
// the next actor's computed speed into the emitted CombatLog so
// ApplyLog needs no further lookups.
func (g Game) performDone() (Game, []GameLog, error) {
	if g.CurrentCombat == nil {
		return g, nil, gameerr.NotInCombat()
	}
	c := *g.CurrentCombat
	nextIndex := (c.CurrentActorIndex + 1) % len(c.Initiative)
	nextActor := c.Initiative[nextIndex]

	dyn, err := g.DynamicCreature(nextActor)
	if err != nil {
		return g, nil, err
	}

	logs := []GameLog{{
		Kind:      LogCombatLog,
		CombatLog: CombatLog{Kind: CombatLogNextTurn, ActingSpeed: units.Cm(uint32(dyn.Speed()))},
	}}
	return g, logs, nil
}

func (g Game) performAct(cmd GameCommand, roller dice.Roller, requireCombatTurn bool) (Game, []GameLog, error) {
	actor, ok := g.Creatures.Get(cmd.CreatureID)
	if !ok {
		return g, nil, gameerr.CreatureNotFound(cmd.CreatureID)
	}
	if requireCombatTurn {
		if g.CurrentCombat == nil {
			return g, nil, gameerr.NotInCombat()
		}
		if g.CurrentCombat.CurrentCreature() != cmd.CreatureID {
			return g, nil, gameerr.NotYourTurn(cmd.CreatureID)
		}
	}

	ability, ok := g.Abilities.Get(cmd.AbilityID)
	if !ok {
		return g, nil, gameerr.AbilityNotFound(cmd.AbilityID)
	}
	if !actor.Abilities.Contains(cmd.AbilityID) {
		return g, nil, gameerr.CreatureLacksAbility(cmd.CreatureID, cmd.AbilityID)
	}
	if !actor.CurEnergy.AtLeast(int32(ability.EnergyCost)) {
		return g, nil, gameerr.NotEnoughEnergy(ability.EnergyCost)
	}
	if !cmd.DecidedTarget.Matches(ability.TargetSpec) {
		return g, nil, gameerr.InvalidTargetForTargetSpec()
	}

	sceneID := cmd.ActingSceneID
	if requireCombatTurn {
		sceneID = g.CurrentCombat.SceneID
	}
	s, ok := g.Scenes.Get(sceneID)
	if !ok {
		return g, nil, gameerr.SceneNotFound(sceneID)
	}
	actorPos, ok := s.GetPos(cmd.CreatureID)
	if !ok {
		return g, nil, gameerr.CreatureNotFound(cmd.CreatureID)
	}

	targetCreatureID := cmd.CreatureID
	targetPos := actorPos
	if cmd.DecidedTarget.Kind == DecidedTargetCreature {
		targetCreatureID = cmd.DecidedTarget.CreatureID
		targetPos, ok = s.GetPos(targetCreatureID)
		if !ok {
			return g, nil, gameerr.CreatureNotFound(targetCreatureID)
		}
	} else if cmd.DecidedTarget.Kind == DecidedTargetPoint {
		targetPos = cmd.DecidedTarget.Point
	}

	if grid.PointDistance(g.TileSystem, actorPos, targetPos).Centimeters() > ability.Range.Centimeters() {
		return g, nil, gameerr.TargetOutOfRange()
	}

	logs := []GameLog{{
		Kind:                   LogCreatureLog,
		CreatureLogCreatureID:  cmd.CreatureID,
		CreatureLogEntry:       CreatureLog{Kind: CreatureLogEnergyDelta, EnergyDelta: -int32(ability.EnergyCost)},
	}}
	logs = append(logs, effectLogs(targetCreatureID, ability.Effect, roller)...)
	return g, logs, nil
}

// effectLogs rolls dice for e (using roller) and returns the
// CreatureLogs that realize it on target.
func effectLogs(target id.CreatureID, e condition.Effect, roller dice.Roller) []GameLog {
	switch e.Kind {
	case condition.EffectKindDamage:
		amount := units.HP(e.Dice.Roll(roller).Total())
		return []GameLog{{Kind: LogCreatureLog, CreatureLogCreatureID: target, CreatureLogEntry: CreatureLog{Kind: CreatureLogDamage, Amount: amount}}}
	case condition.EffectKindHeal:
		amount := units.HP(e.Dice.Roll(roller).Total())
		return []GameLog{{Kind: LogCreatureLog, CreatureLogCreatureID: target, CreatureLogEntry: CreatureLog{Kind: CreatureLogHeal, Amount: amount}}}
	case condition.EffectKindGenerateEnergy:
		return []GameLog{{Kind: LogCreatureLog, CreatureLogCreatureID: target, CreatureLogEntry: CreatureLog{Kind: CreatureLogEnergyDelta, EnergyDelta: int32(e.GenerateEnergy)}}}
	case condition.EffectKindMultiEffect:
		var out []GameLog
		for _, sub := range e.MultiEffect {
			out = append(out, effectLogs(target, sub, roller)...)
		}
		return out
	case condition.EffectKindApplyCondition:
		return []GameLog{{
			Kind: LogCreatureLog, CreatureLogCreatureID: target,
			CreatureLogEntry: CreatureLog{
				Kind: CreatureLogApplyCondition,
				AppliedCond: condition.AppliedCondition{
					ID:        id.NewConditionID(),
					Condition: e.ApplyConditionCondition,
					Duration:  e.ApplyConditionDuration,
				},
			},
		}}
	default:
		return nil
	}
}
