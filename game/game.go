// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package game

import (
	"github.com/ironmoor/tactics/combat"
	"github.com/ironmoor/tactics/condition"
	"github.com/ironmoor/tactics/creature"
	"github.com/ironmoor/tactics/gameerr"
	"github.com/ironmoor/tactics/grid"
	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/scene"
)

// Game is the aggregate root: every creature, scene, class, ability,
// and player, plus the currently active combat (if any) and the
// distance metric this game uses for all spatial queries. Game is a
// value; every mutation below returns a fresh Game.
type Game struct {
	CurrentCombat *combat.Combat

	Creatures *id.Indexed[id.CreatureID, creature.Creature]
	Scenes    *id.Indexed[id.SceneID, scene.Scene]
	Classes   *id.Indexed[string, creature.Class]
	Abilities *id.Indexed[id.AbilityID, Ability]
	Players   *id.Indexed[id.PlayerID, Player]

	TileSystem grid.Metric
}

// New constructs an empty Game using m as its distance metric.
func New(m grid.Metric) Game {
	return Game{
		Creatures:  id.NewIndexed[id.CreatureID, creature.Creature](),
		Scenes:     id.NewIndexed[id.SceneID, scene.Scene](),
		Classes:    id.NewIndexed[string, creature.Class](),
		Abilities:  id.NewIndexed[id.AbilityID, Ability](),
		Players:    id.NewIndexed[id.PlayerID, Player](),
		TileSystem: m,
	}
}

// clone returns a shallow copy with its own top-level containers, so
// mutating the copy's containers never touches the receiver's.
func (g Game) clone() Game {
	next := g
	next.Creatures = g.Creatures.Clone()
	next.Scenes = g.Scenes.Clone()
	next.Classes = g.Classes.Clone()
	next.Abilities = g.Abilities.Clone()
	next.Players = g.Players.Clone()
	if g.CurrentCombat != nil {
		c := *g.CurrentCombat
		next.CurrentCombat = &c
	}
	return next
}

// ClassByName implements creature.ClassLookup.
func (g Game) ClassByName(name string) (creature.Class, bool) {
	return g.Classes.Get(name)
}

// VolumeConditionsFor implements creature.VolumeConditionSource: the
// volume conditions overlapping cid's position, but only when cid is
// in the scene of the currently active combat.
func (g Game) VolumeConditionsFor(cid id.CreatureID) []condition.AppliedCondition {
	if g.CurrentCombat == nil {
		return nil
	}
	c, ok := g.Creatures.Get(cid)
	if !ok {
		return nil
	}
	s, ok := g.Scenes.Get(g.CurrentCombat.SceneID)
	if !ok {
		return nil
	}
	if _, inScene := s.Creatures[cid]; !inScene {
		return nil
	}
	return s.CreatureVolumeConditions(cid, c.Size)
}

// DynamicCreature returns a computed view over cid, if it exists.
func (g Game) DynamicCreature(cid id.CreatureID) (creature.DynamicCreature, error) {
	c, ok := g.Creatures.Get(cid)
	if !ok {
		return creature.DynamicCreature{}, gameerr.CreatureNotFound(cid)
	}
	return creature.NewDynamicCreature(c, g), nil
}

// SceneOf returns the scene cid is currently placed in, if any.
func (g Game) SceneOf(cid id.CreatureID) (scene.Scene, bool) {
	for _, s := range g.Scenes.Values() {
		if _, ok := s.Creatures[cid]; ok {
			return s, true
		}
	}
	return scene.Scene{}, false
}

// ApplyLog dispatches log to its target entity's apply logic,
// producing a new Game. This is total (no I/O, no RNG) and
// deterministic: it is the sole mechanism by which Game state changes.
func ApplyLog(g Game, log GameLog) Game {
	next := g.clone()

	switch log.Kind {
	case LogCreateCreature:
		next.Creatures.Insert(log.Creature)

	case LogRemoveCreature:
		next.Creatures.Remove(log.CreatureID)
		if next.CurrentCombat != nil {
			c := next.CurrentCombat.RemoveCreature(log.CreatureID)
			next.CurrentCombat = &c
		}

	case LogAttributeCheckResult:
		// purely informational: the roll outcome is recorded in the log
		// stream for audit, Game state itself is unaffected.

	case LogEditCreature:
		next.Creatures.Mutate(log.CreatureID, func(c creature.Creature) creature.Creature {
			if log.EditCreature.Name != nil {
				c.Name = *log.EditCreature.Name
			}
			if log.EditCreature.Bio != nil {
				c.Bio = *log.EditCreature.Bio
			}
			if log.EditCreature.Notes != nil {
				c.Notes = *log.EditCreature.Notes
			}
			return c
		})

	case LogSetCreaturePos:
		next.Scenes.Mutate(log.SceneID, func(s scene.Scene) scene.Scene {
			return s.SetPos(log.CreatureID, log.Point)
		})

	case LogPathCreature:
		// An empty path is a no-op; only a non-empty path moves the
		// creature, and only to its final point.
		if len(log.Path) > 0 {
			dest := log.Path[len(log.Path)-1]
			next.Scenes.Mutate(log.SceneID, func(s scene.Scene) scene.Scene {
				return s.SetPos(log.CreatureID, dest)
			})
		}

	case LogStartCombat:
		c, err := combat.Start(log.SceneID, log.Initiative)
		if err == nil {
			next.CurrentCombat = &c
		}

	case LogStopCombat:
		next.CurrentCombat = nil

	case LogAddCreatureToCombat:
		if next.CurrentCombat != nil {
			c := *next.CurrentCombat
			c.Initiative = append(append([]id.CreatureID(nil), c.Initiative...), log.CreatureID)
			next.CurrentCombat = &c
		}

	case LogRemoveCreatureFromCombat:
		if next.CurrentCombat != nil {
			c := next.CurrentCombat.RemoveCreature(log.CreatureID)
			next.CurrentCombat = &c
		}

	case LogCombatLog:
		if next.CurrentCombat != nil {
			next.CurrentCombat = applyCombatLog(*next.CurrentCombat, log.CombatLog)
		}

	case LogCreatureLog:
		next.Creatures.Mutate(log.CreatureLogCreatureID, func(c creature.Creature) creature.Creature {
			return applyCreatureLog(c, log.CreatureLogEntry)
		})

	case LogSceneLog:
		next.Scenes.Mutate(log.SceneLogSceneID, func(s scene.Scene) scene.Scene {
			return applySceneLog(s, log.SceneLogEntry)
		})

	case LogCreateScene:
		next.Scenes.Insert(log.Scene)

	case LogEditScene:
		next.Scenes.Mutate(log.SceneID, func(s scene.Scene) scene.Scene {
			if log.EditScene.Name != nil {
				s.Name = *log.EditScene.Name
			}
			if log.EditScene.Background != nil {
				s.Background = *log.EditScene.Background
			}
			return s
		})

	case LogCreateFolder:
		// Folder tree mutation is owned by the folder package and the
		// host wrapper; Game only needs to round-trip the log, it
		// doesn't hold folder state itself.

	case LogRollback:
		// Rollback is handled by the history package, which owns
		// snapshot reconstruction; Game.ApplyLog never sees one in
		// practice, since the history package's App.rollbackTo
		// intercepts Rollback logs and reconstructs state itself
		// rather than folding this log through ApplyLog.
	}

	return next
}

func applyCombatLog(c combat.Combat, log CombatLog) *combat.Combat {
	switch log.Kind {
	case CombatLogNextTurn:
		next := c.NextTurn(log.ActingSpeed)
		return &next
	case CombatLogSpendMovement:
		next, err := c.SpendMovement(log.Cost)
		if err != nil {
			return &c
		}
		return &next
	default:
		return &c
	}
}

func applyCreatureLog(c creature.Creature, log CreatureLog) creature.Creature {
	switch log.Kind {
	case CreatureLogDamage:
		return c.WithDamage(log.Amount)
	case CreatureLogHeal:
		return c.WithHeal(log.Amount)
	case CreatureLogEnergyDelta:
		return c.WithEnergyDelta(log.EnergyDelta)
	case CreatureLogApplyCondition:
		return c.WithAppliedCondition(log.AppliedCond)
	case CreatureLogDecrementCondition:
		return c.WithDecrementedCondition(log.ConditionID)
	case CreatureLogRemoveCondition:
		return c.WithRemovedCondition(log.ConditionID)
	default:
		return c
	}
}

func applySceneLog(s scene.Scene, log SceneLog) scene.Scene {
	switch log.Kind {
	case SceneLogAddCreature:
		return s.WithCreature(log.CreatureID, log.Point, log.Visibility)
	case SceneLogRemoveCreature:
		return s.WithoutCreature(log.CreatureID)
	case SceneLogSetTerrain:
		return s.WithTerrain(log.Point, log.Open)
	case SceneLogAddVolumeCondition:
		return s.WithVolumeCondition(log.ConditionID, log.VolumeCondition)
	case SceneLogRemoveVolumeCondition:
		return s.WithoutVolumeCondition(log.ConditionID)
	default:
		return s
	}
}
