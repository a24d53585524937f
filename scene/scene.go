// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package scene

import (
	"github.com/ironmoor/tactics/condition"
	"github.com/ironmoor/tactics/creature"
	"github.com/ironmoor/tactics/dice"
	"github.com/ironmoor/tactics/grid"
	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/units"
)

// Placement is where and how visibly a creature sits in a scene.
type Placement struct {
	Point      units.Point3
	Visibility Visibility
}

// VolumeCondition is an AppliedCondition pinned to a point in a scene,
// affecting any creature whose body overlaps its shape.
type VolumeCondition struct {
	Point     units.Point3
	Volume    grid.Volume
	Condition condition.AppliedCondition
}

// AttributeCheck describes a skill check a scene exposes by name: the
// attribute it tests, the difficulty target, and the dice rolled
// against it.
type AttributeCheck struct {
	AttrID id.AttrID
	Target creature.SkillLevel
	Dice   *dice.Pool
}

// Scene is a spatial map: terrain, creature placements, volume
// conditions, annotations, and attribute checks. It never embeds
// Creature values, only ids — live stats always resolve against
// Game.creatures.
type Scene struct {
	ID   id.SceneID
	Name string

	Terrain grid.Terrain

	Creatures map[id.CreatureID]Placement

	VolumeConditions map[id.ConditionID]VolumeCondition

	Annotations     map[string]units.Point3
	AttributeChecks map[string]AttributeCheck

	Background string
}

// Key implements id.Keyed.
func (s Scene) Key() id.SceneID { return s.ID }

// New constructs an empty Scene with no terrain or occupants.
func New(name string) Scene {
	return Scene{
		ID:               id.NewSceneID(),
		Name:             name,
		Terrain:          grid.Terrain{},
		Creatures:        map[id.CreatureID]Placement{},
		VolumeConditions: map[id.ConditionID]VolumeCondition{},
		Annotations:      map[string]units.Point3{},
		AttributeChecks:  map[string]AttributeCheck{},
	}
}

func (s Scene) clone() Scene {
	next := s

	next.Terrain = make(grid.Terrain, len(s.Terrain))
	for p := range s.Terrain {
		next.Terrain[p] = struct{}{}
	}

	next.Creatures = make(map[id.CreatureID]Placement, len(s.Creatures))
	for k, v := range s.Creatures {
		next.Creatures[k] = v
	}

	next.VolumeConditions = make(map[id.ConditionID]VolumeCondition, len(s.VolumeConditions))
	for k, v := range s.VolumeConditions {
		next.VolumeConditions[k] = v
	}

	next.Annotations = make(map[string]units.Point3, len(s.Annotations))
	for k, v := range s.Annotations {
		next.Annotations[k] = v
	}

	next.AttributeChecks = make(map[string]AttributeCheck, len(s.AttributeChecks))
	for k, v := range s.AttributeChecks {
		next.AttributeChecks[k] = v
	}

	return next
}

// GetPos returns cid's placement point, if it is in this scene.
func (s Scene) GetPos(cid id.CreatureID) (units.Point3, bool) {
	p, ok := s.Creatures[cid]
	return p.Point, ok
}

// SetPos returns a copy with cid's point updated, preserving its
// current visibility (or defaulting to GMOnly if cid was not yet present).
func (s Scene) SetPos(cid id.CreatureID, pt units.Point3) Scene {
	next := s.clone()
	placement, ok := next.Creatures[cid]
	if !ok {
		placement.Visibility = GMOnly
	}
	placement.Point = pt
	next.Creatures[cid] = placement
	return next
}

// WithCreature returns a copy with cid placed at pt with the given visibility.
func (s Scene) WithCreature(cid id.CreatureID, pt units.Point3, vis Visibility) Scene {
	next := s.clone()
	next.Creatures[cid] = Placement{Point: pt, Visibility: vis}
	return next
}

// WithTerrain returns a copy with pt marked open or closed.
func (s Scene) WithTerrain(pt units.Point3, open bool) Scene {
	next := s.clone()
	if open {
		next.Terrain.Add(pt)
	} else {
		next.Terrain.Remove(pt)
	}
	return next
}

// WithVolumeCondition returns a copy with vc stored under condID.
func (s Scene) WithVolumeCondition(condID id.ConditionID, vc VolumeCondition) Scene {
	next := s.clone()
	next.VolumeConditions[condID] = vc
	return next
}

// WithoutVolumeCondition returns a copy with condID's volume condition removed.
func (s Scene) WithoutVolumeCondition(condID id.ConditionID) Scene {
	next := s.clone()
	delete(next.VolumeConditions, condID)
	return next
}

// WithoutCreature returns a copy with cid removed from the scene.
func (s Scene) WithoutCreature(cid id.CreatureID) Scene {
	next := s.clone()
	delete(next.Creatures, cid)
	return next
}

// CreatureVolumeConditions returns the subset of this scene's volume
// conditions whose shape, placed at its point, contains any lattice
// point of the creature's AABB footprint at its current position.
// Only AABB-shaped volume conditions can match: grid.PointsInVolume
// yields no lattice points for other shapes.
func (s Scene) CreatureVolumeConditions(cid id.CreatureID, size units.AABB) []condition.AppliedCondition {
	placement, ok := s.Creatures[cid]
	if !ok {
		return nil
	}

	footprint := grid.PointsInVolume(grid.NewAABB(size), placement.Point)
	footprintSet := make(map[units.Point3]struct{}, len(footprint))
	for _, p := range footprint {
		footprintSet[p] = struct{}{}
	}

	var out []condition.AppliedCondition
	for _, vc := range s.VolumeConditions {
		for _, p := range grid.PointsInVolume(vc.Volume, vc.Point) {
			if _, hit := footprintSet[p]; hit {
				out = append(out, vc.Condition)
				break
			}
		}
	}
	return out
}
