// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import (
	"github.com/ironmoor/tactics/gameerr"
	"github.com/ironmoor/tactics/grid"
	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/units"
)

// Combat is a turn-ordered encounter: the scene it's running in, the
// initiative-ordered (non-empty) roster, the index of the acting
// creature, and that creature's remaining movement budget this turn.
type Combat struct {
	SceneID           id.SceneID
	Initiative        []id.CreatureID
	CurrentActorIndex int
	MovementBudget    units.Distance
}

// Start begins a combat in scene over initiative, which must be
// non-empty. The first creature's turn begins with no movement budget
// granted yet — callers typically follow Start with an explicit
// budget reset once the first creature's speed is known.
func Start(sceneID id.SceneID, initiative []id.CreatureID) (Combat, error) {
	if len(initiative) == 0 {
		return Combat{}, gameerr.CombatMustHaveCreatures()
	}
	return Combat{
		SceneID:           sceneID,
		Initiative:        initiative,
		CurrentActorIndex: 0,
	}, nil
}

// CurrentCreature returns the id of the creature whose turn it is.
func (c Combat) CurrentCreature() id.CreatureID {
	return c.Initiative[c.CurrentActorIndex]
}

// NextTurn advances the actor index modulo the roster length and
// resets the movement budget to actingSpeed.
func (c Combat) NextTurn(actingSpeed units.Distance) Combat {
	next := c
	next.CurrentActorIndex = (c.CurrentActorIndex + 1) % len(c.Initiative)
	next.MovementBudget = actingSpeed
	return next
}

// SpendMovement deducts cost from the budget. It fails if cost
// exceeds the remaining budget; movement is rejected rather than
// allowed to go negative.
func (c Combat) SpendMovement(cost units.Distance) (Combat, error) {
	if c.MovementBudget.Centimeters() < cost.Centimeters() {
		return c, gameerr.CreatureOutOfRange()
	}
	next := c
	next.MovementBudget = c.MovementBudget.Sub(cost)
	return next, nil
}

// CurrentMovementOptions runs an accessibility query from pos within
// the current movement budget, in the scene's terrain, under metric,
// for a creature with the given footprint.
func (c Combat) CurrentMovementOptions(m grid.Metric, t grid.Terrain, volume units.AABB, pos units.Point3) []units.Point3 {
	return grid.GetAllAccessible(m, pos, t, volume, c.MovementBudget)
}

// RemoveCreature returns a copy of c with cid dropped from the
// initiative roster. If cid was the current actor, the cursor stays
// at the same index, which now names the next creature in turn order
// (wrapping to the start of the roster if it fell off the end).
func (c Combat) RemoveCreature(cid id.CreatureID) Combat {
	next := c
	next.Initiative = make([]id.CreatureID, 0, len(c.Initiative))
	removedBeforeCursor := 0
	for i, id := range c.Initiative {
		if id == cid {
			if i < c.CurrentActorIndex {
				removedBeforeCursor++
			}
			continue
		}
		next.Initiative = append(next.Initiative, id)
	}
	next.CurrentActorIndex = c.CurrentActorIndex - removedBeforeCursor
	if len(next.Initiative) > 0 {
		next.CurrentActorIndex %= len(next.Initiative)
	} else {
		next.CurrentActorIndex = 0
	}
	return next
}
