// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironmoor/tactics/condition"
	"github.com/ironmoor/tactics/grid"
	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/scene"
	"github.com/ironmoor/tactics/units"
)

func TestSetPosPreservesVisibility(t *testing.T) {
	s := scene.New("Glade")
	cid := id.NewCreatureID()
	s = s.WithCreature(cid, units.Pt3(0, 0, 0), scene.AllPlayers)

	s = s.SetPos(cid, units.Pt3(1, 1, 1))

	pt, ok := s.GetPos(cid)
	require.True(t, ok)
	assert.Equal(t, units.Pt3(1, 1, 1), pt)
	assert.Equal(t, scene.AllPlayers, s.Creatures[cid].Visibility)
}

func TestCreatureVolumeConditionsOverlap(t *testing.T) {
	s := scene.New("Glade")
	cid := id.NewCreatureID()
	s = s.WithCreature(cid, units.Pt3(0, 0, 0), scene.AllPlayers)

	condID := id.NewConditionID()
	s.VolumeConditions[condID] = scene.VolumeCondition{
		Point:  units.Pt3(0, 0, 0),
		Volume: grid.NewAABB(units.Cube(2)),
		Condition: condition.AppliedCondition{
			ID:        condID,
			Condition: condition.Incapacitated(),
			Duration:  condition.Interminate(),
		},
	}

	overlapping := s.CreatureVolumeConditions(cid, units.Cube(1))
	require.Len(t, overlapping, 1)
	assert.Equal(t, condition.KindIncapacitated, overlapping[0].Condition.Kind)
}

func TestWithoutCreatureRemoves(t *testing.T) {
	s := scene.New("Glade")
	cid := id.NewCreatureID()
	s = s.WithCreature(cid, units.Pt3(0, 0, 0), scene.GMOnly)
	s = s.WithoutCreature(cid)

	_, ok := s.GetPos(cid)
	assert.False(t, ok)
}
