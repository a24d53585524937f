// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironmoor/tactics/condition"
	"github.com/ironmoor/tactics/creature"
	"github.com/ironmoor/tactics/dice"
	"github.com/ironmoor/tactics/gameerr"
	"github.com/ironmoor/tactics/grid"
	"github.com/ironmoor/tactics/id"
	"github.com/ironmoor/tactics/scene"
	"github.com/ironmoor/tactics/units"
)

func newTestCreature(name string) creature.Creature {
	return creature.New(name, "fighter", units.Cm(600), 20, 10, units.Cube(1), dice.Expr(1, 20))
}

func TestPerformCreateCreatureRoundTrips(t *testing.T) {
	g := New(grid.Realistic)
	c := newTestCreature("Orin")

	next, logs, err := g.PerformUnchecked(GameCommand{Kind: CommandCreateCreature, NewCreature: c}, dice.NewMockRoller(1))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, LogCreateCreature, logs[0].Kind)

	got, ok := next.Creatures.Get(logs[0].Creature.ID)
	require.True(t, ok)
	require.Equal(t, "Orin", got.Name)

	// the original Game is untouched.
	require.Equal(t, 0, g.Creatures.Len())
}

func TestStartCombatRejectsEmptyRoster(t *testing.T) {
	g := New(grid.Realistic)
	_, _, err := g.PerformUnchecked(GameCommand{Kind: CommandStartCombat, CombatSceneID: "", CreatureIDs: nil}, nil)
	require.Error(t, err)
	require.True(t, gameerr.Is(err, gameerr.CodeCombatMustHaveCreatures))
}

func TestStartCombatRejectsUnknownScene(t *testing.T) {
	g := New(grid.Realistic)
	c := newTestCreature("Orin")
	g.Creatures.Insert(c)

	_, _, err := g.PerformUnchecked(GameCommand{
		Kind: CommandStartCombat, CombatSceneID: "missing-scene", CreatureIDs: []id.CreatureID{c.ID},
	}, nil)
	require.Error(t, err)
	require.True(t, gameerr.Is(err, gameerr.CodeSceneNotFound))
}

func TestStartCombatThenAlreadyInCombat(t *testing.T) {
	g := New(grid.Realistic)
	c := newTestCreature("Orin")
	g.Creatures.Insert(c)
	s := scene.New("Arena")
	g.Scenes.Insert(s)

	next, _, err := g.PerformUnchecked(GameCommand{
		Kind: CommandStartCombat, CombatSceneID: s.ID, CreatureIDs: []id.CreatureID{c.ID},
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, next.CurrentCombat)

	_, _, err = next.PerformUnchecked(GameCommand{
		Kind: CommandStartCombat, CombatSceneID: s.ID, CreatureIDs: []id.CreatureID{c.ID},
	}, nil)
	require.Error(t, err)
	require.True(t, gameerr.Is(err, gameerr.CodeAlreadyInCombat))
}

func TestStopCombatRejectsWhenNotInCombat(t *testing.T) {
	g := New(grid.Realistic)
	_, _, err := g.PerformUnchecked(GameCommand{Kind: CommandStopCombat}, nil)
	require.Error(t, err)
	require.True(t, gameerr.Is(err, gameerr.CodeNotInCombat))
}

func TestSetCreaturePosThenApplyLog(t *testing.T) {
	g := New(grid.Realistic)
	c := newTestCreature("Orin")
	g.Creatures.Insert(c)
	s := scene.New("Arena")
	s = s.WithCreature(c.ID, units.Pt3(0, 0, 0), scene.GMOnly)
	g.Scenes.Insert(s)

	dest := units.Pt3(3, 0, 0)
	next, logs, err := g.PerformUnchecked(GameCommand{
		Kind: CommandSetCreaturePos, ActingSceneID: s.ID, CreatureID: c.ID, Target: dest,
	}, nil)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	ns, ok := next.Scenes.Get(s.ID)
	require.True(t, ok)
	pt, ok := ns.GetPos(c.ID)
	require.True(t, ok)
	require.Equal(t, dest, pt)

	// original scene is untouched.
	os, _ := g.Scenes.Get(s.ID)
	opt, _ := os.GetPos(c.ID)
	require.Equal(t, units.Pt3(0, 0, 0), opt)
}

func TestCombatActHappyPath(t *testing.T) {
	g := New(grid.Realistic)

	attacker := newTestCreature("Attacker")
	target := newTestCreature("Target")

	ability := Ability{
		ID:         "fireball",
		Name:       "Fireball",
		EnergyCost: 3,
		Range:      units.Cm(1000),
		TargetSpec: TargetSpecCreature,
		Effect:     condition.Damage(dice.Expr(1, 6)),
	}
	g.Abilities.Insert(ability)
	attacker.Abilities.Insert(creature.AbilityStatus{AbilityID: ability.ID})
	g.Creatures.Insert(attacker)
	g.Creatures.Insert(target)

	s := scene.New("Arena")
	s = s.WithCreature(attacker.ID, units.Pt3(0, 0, 0), scene.GMOnly)
	s = s.WithCreature(target.ID, units.Pt3(1, 0, 0), scene.GMOnly)
	g.Scenes.Insert(s)

	g = ApplyLog(g, GameLog{Kind: LogStartCombat, SceneID: s.ID, Initiative: []id.CreatureID{attacker.ID, target.ID}})

	next, logs, err := g.PerformUnchecked(GameCommand{
		Kind:          CommandCombatAct,
		CreatureID:    attacker.ID,
		AbilityID:     ability.ID,
		DecidedTarget: DecidedTarget{Kind: DecidedTargetCreature, CreatureID: target.ID},
	}, dice.NewMockRoller(4))
	require.NoError(t, err)
	require.NotEmpty(t, logs)

	attackerAfter, _ := next.Creatures.Get(attacker.ID)
	require.Equal(t, units.Energy(7), attackerAfter.CurEnergy)

	targetAfter, _ := next.Creatures.Get(target.ID)
	require.Equal(t, units.HP(16), targetAfter.CurHP)

	// fold(ApplyLog, g, logs) must equal the returned next (invariant 1).
	folded := g
	for _, l := range logs {
		folded = ApplyLog(folded, l)
	}
	foldedAttacker, _ := folded.Creatures.Get(attacker.ID)
	require.Equal(t, attackerAfter, foldedAttacker)
}

func TestCombatActRejectsWrongTurn(t *testing.T) {
	g := New(grid.Realistic)

	attacker := newTestCreature("Attacker")
	other := newTestCreature("Other")
	ability := Ability{ID: "poke", EnergyCost: 1, Range: units.Cm(500), TargetSpec: TargetSpecNone, Effect: condition.Heal(dice.Flat(1))}
	g.Abilities.Insert(ability)
	attacker.Abilities.Insert(creature.AbilityStatus{AbilityID: ability.ID})
	g.Creatures.Insert(attacker)
	g.Creatures.Insert(other)

	s := scene.New("Arena")
	s = s.WithCreature(attacker.ID, units.Pt3(0, 0, 0), scene.GMOnly)
	s = s.WithCreature(other.ID, units.Pt3(0, 0, 0), scene.GMOnly)
	g.Scenes.Insert(s)
	g = ApplyLog(g, GameLog{Kind: LogStartCombat, SceneID: s.ID, Initiative: []id.CreatureID{other.ID, attacker.ID}})

	_, _, err := g.PerformUnchecked(GameCommand{
		Kind: CommandCombatAct, CreatureID: attacker.ID, AbilityID: ability.ID,
	}, dice.NewMockRoller(1))
	require.Error(t, err)
	require.True(t, gameerr.Is(err, gameerr.CodeNotYourTurn))
}

func TestDoneAdvancesTurnAndBudget(t *testing.T) {
	g := New(grid.Realistic)
	first := newTestCreature("First")
	second := newTestCreature("Second")
	g.Creatures.Insert(first)
	g.Creatures.Insert(second)

	s := scene.New("Arena")
	g.Scenes.Insert(s)
	g = ApplyLog(g, GameLog{Kind: LogStartCombat, SceneID: s.ID, Initiative: []id.CreatureID{first.ID, second.ID}})

	next, logs, err := g.PerformUnchecked(GameCommand{Kind: CommandDone}, nil)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, LogCombatLog, logs[0].Kind)
	require.Equal(t, CombatLogNextTurn, logs[0].CombatLog.Kind)

	require.Equal(t, 1, next.CurrentCombat.CurrentActorIndex)
	require.Equal(t, second.Speed, next.CurrentCombat.MovementBudget)
}
