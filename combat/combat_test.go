// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironmoor/tactics/combat"
	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/units"
)

func TestStartRejectsEmptyRoster(t *testing.T) {
	_, err := combat.Start(id.NewSceneID(), nil)
	assert.Error(t, err)
}

func TestNextTurnAdvancesAndResetsBudget(t *testing.T) {
	ranger, rogue := id.NewCreatureID(), id.NewCreatureID()
	c, err := combat.Start(id.NewSceneID(), []id.CreatureID{ranger, rogue})
	require.NoError(t, err)

	assert.Equal(t, ranger, c.CurrentCreature())

	c = c.NextTurn(units.FromMeters(9))
	assert.Equal(t, rogue, c.CurrentCreature())
	assert.Equal(t, units.FromMeters(9), c.MovementBudget)

	c = c.NextTurn(units.FromMeters(6))
	assert.Equal(t, ranger, c.CurrentCreature())
}

func TestSpendMovementRejectsOverBudget(t *testing.T) {
	ranger := id.NewCreatureID()
	c, err := combat.Start(id.NewSceneID(), []id.CreatureID{ranger})
	require.NoError(t, err)
	c = c.NextTurn(units.Cm(100))

	_, err = c.SpendMovement(units.Cm(141))
	assert.Error(t, err)

	c, err = c.SpendMovement(units.Cm(100))
	require.NoError(t, err)
	assert.Equal(t, units.Cm(0), c.MovementBudget)
}

func TestRemoveCreatureAdjustsCursor(t *testing.T) {
	ranger, rogue, cleric := id.NewCreatureID(), id.NewCreatureID(), id.NewCreatureID()
	c, err := combat.Start(id.NewSceneID(), []id.CreatureID{ranger, rogue, cleric})
	require.NoError(t, err)
	c = c.NextTurn(units.Cm(0)) // now on rogue

	c = c.RemoveCreature(ranger)
	assert.Equal(t, rogue, c.CurrentCreature())
}
