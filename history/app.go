// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package history

import (
	"github.com/ironmoor/tactics/collision"
	"github.com/ironmoor/tactics/dice"
	"github.com/ironmoor/tactics/game"
	"github.com/ironmoor/tactics/gameerr"
	"github.com/ironmoor/tactics/grid"
	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/units"
)

// App is the host-facing event log: the current Game plus a bounded
// deque of snapshots recording how it got there. Every successful
// command replaces CurrentGame and appends its logs to the active
// snapshot segment, rolling to a fresh snapshot when the segment would
// otherwise exceed maxSegmentLogs.
type App struct {
	CurrentGame game.Game
	Snapshots   []Snapshot
}

// New starts an App with g as the initial (unrecorded) game state.
func New(g game.Game) *App {
	return &App{CurrentGame: g}
}

// PerformUnchecked delegates cmd to the current Game, then records the
// transition: CurrentGame is replaced and logs are appended to the
// active snapshot segment (rolling to a new one first if needed).
// Meta commands produce no logs and so never roll a new snapshot.
func (a *App) PerformUnchecked(cmd game.GameCommand, roller dice.Roller) (game.Game, []game.GameLog, error) {
	before := a.CurrentGame
	next, logs, err := before.PerformUnchecked(cmd, roller)
	if err != nil {
		return a.CurrentGame, nil, err
	}

	a.CurrentGame = next
	a.appendOrRoll(before, logs)
	return a.CurrentGame, logs, nil
}

// appendOrRoll appends logs to the active snapshot segment, rolling a
// fresh snapshot (baselined at before, the state prior to logs) first
// when there is no active segment or appending would exceed
// maxSegmentLogs.
func (a *App) appendOrRoll(before game.Game, logs []game.GameLog) {
	if len(logs) == 0 {
		return
	}
	if len(a.Snapshots) == 0 || len(a.Snapshots[len(a.Snapshots)-1].Logs)+len(logs) > maxSegmentLogs {
		a.Snapshots = append(a.Snapshots, Snapshot{Game: before})
		if len(a.Snapshots) > maxSnapshots {
			a.Snapshots = a.Snapshots[len(a.Snapshots)-maxSnapshots:]
		}
	}
	last := &a.Snapshots[len(a.Snapshots)-1]
	last.Logs = append(last.Logs, logs...)
}

// GetMovementOptions returns every point cid can reach in sid's
// terrain within its full (non-combat) speed.
func (a *App) GetMovementOptions(sid id.SceneID, cid id.CreatureID) ([]units.Point3, error) {
	s, ok := a.CurrentGame.Scenes.Get(sid)
	if !ok {
		return nil, gameerr.SceneNotFound(sid)
	}
	c, ok := a.CurrentGame.Creatures.Get(cid)
	if !ok {
		return nil, gameerr.CreatureNotFound(cid)
	}
	start, ok := s.GetPos(cid)
	if !ok {
		return nil, gameerr.CreatureNotFound(cid)
	}
	return grid.GetAllAccessible(a.CurrentGame.TileSystem, start, s.Terrain, c.Size, c.Speed), nil
}

// GetCombatMovementOptions returns the current actor's reachable
// points within its remaining turn movement budget.
func (a *App) GetCombatMovementOptions() ([]units.Point3, error) {
	cb := a.CurrentGame.CurrentCombat
	if cb == nil {
		return nil, gameerr.NotInCombat()
	}
	s, ok := a.CurrentGame.Scenes.Get(cb.SceneID)
	if !ok {
		return nil, gameerr.SceneNotFound(cb.SceneID)
	}
	cid := cb.CurrentCreature()
	c, ok := a.CurrentGame.Creatures.Get(cid)
	if !ok {
		return nil, gameerr.CreatureNotFound(cid)
	}
	pos, ok := s.GetPos(cid)
	if !ok {
		return nil, gameerr.CreatureNotFound(cid)
	}
	return cb.CurrentMovementOptions(a.CurrentGame.TileSystem, s.Terrain, c.Size, pos), nil
}

// PotentialTargets is the answer to GetTargetOptions: every creature
// and/or point within abid's range of cid, shaped by its TargetSpec.
type PotentialTargets struct {
	Creatures []id.CreatureID
	Points    []units.Point3
}

// GetTargetOptions enumerates the valid DecidedTarget choices for cid
// invoking abid from its current position in sid.
func (a *App) GetTargetOptions(sid id.SceneID, cid id.CreatureID, abid id.AbilityID) (PotentialTargets, error) {
	s, ok := a.CurrentGame.Scenes.Get(sid)
	if !ok {
		return PotentialTargets{}, gameerr.SceneNotFound(sid)
	}
	origin, ok := s.GetPos(cid)
	if !ok {
		return PotentialTargets{}, gameerr.CreatureNotFound(cid)
	}
	ab, ok := a.CurrentGame.Abilities.Get(abid)
	if !ok {
		return PotentialTargets{}, gameerr.AbilityNotFound(abid)
	}

	var out PotentialTargets
	switch ab.TargetSpec {
	case game.TargetSpecCreature:
		for otherID := range s.Creatures {
			pt, _ := s.GetPos(otherID)
			if grid.PointDistance(a.CurrentGame.TileSystem, origin, pt).Centimeters() <= ab.Range.Centimeters() {
				out.Creatures = append(out.Creatures, otherID)
			}
		}
	case game.TargetSpecPoint:
		for _, pt := range grid.GetAllAccessible(a.CurrentGame.TileSystem, origin, s.Terrain, units.AABB{}, ab.Range) {
			out.Points = append(out.Points, pt)
		}
	}
	return out, nil
}

// CreaturesAndTerrainInVolume is the answer to
// GetCreaturesAndTerrainInVolume: every open terrain lattice point and
// every creature whose footprint overlaps an ad-hoc query volume
// placed at pt in sid.
type CreaturesAndTerrainInVolume struct {
	Terrain   []units.Point3
	Creatures []id.CreatureID
}

// GetCreaturesAndTerrainInVolume runs a one-shot broadphase query: a
// collision.World is built with every creature in sid plus a single
// synthetic volume entry for v at pt, and QueryWorld reports which
// creatures overlap it.
func (a *App) GetCreaturesAndTerrainInVolume(sid id.SceneID, pt units.Point3, v grid.Volume) (CreaturesAndTerrainInVolume, error) {
	s, ok := a.CurrentGame.Scenes.Get(sid)
	if !ok {
		return CreaturesAndTerrainInVolume{}, gameerr.SceneNotFound(sid)
	}

	const queryVolumeID = id.ConditionID("query-volume")
	var inputs []collision.CreatureInput
	for cid := range s.Creatures {
		c, ok := a.CurrentGame.Creatures.Get(cid)
		if !ok {
			continue
		}
		cpos, _ := s.GetPos(cid)
		inputs = append(inputs, collision.CreatureInput{ID: cid, Position: cpos, Size: c.Size})
	}
	world := collision.MakeWorld(inputs, []collision.VolumeInput{{ID: queryVolumeID, Point: pt, Volume: v}})

	var out CreaturesAndTerrainInVolume
	collision.QueryWorld(world, func(x, y any) any {
		if cc, ok := x.(collision.CreatureContact); ok {
			out.Creatures = append(out.Creatures, cc.ID)
		}
		return nil
	})

	for _, p := range grid.PointsInVolume(v, pt) {
		if s.Terrain.IsOpen(p) {
			out.Terrain = append(out.Terrain, p)
		}
	}
	return out, nil
}
