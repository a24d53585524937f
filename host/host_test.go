// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package host

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ironmoor/tactics/creature"
	"github.com/ironmoor/tactics/dice"
	"github.com/ironmoor/tactics/game"
	"github.com/ironmoor/tactics/gameerr"
	"github.com/ironmoor/tactics/grid"
	"github.com/ironmoor/tactics/units"
)

func newTestCreature(name string) creature.Creature {
	return creature.New(name, "fighter", units.Cm(600), 20, 10, units.Cube(1), dice.Expr(1, 20))
}

func TestManagerCreateAndGet(t *testing.T) {
	m := New(zaptest.NewLogger(t))
	m.Create("camp-1", game.New(grid.Realistic))

	gh, ok := m.Get("camp-1")
	require.True(t, ok)
	require.Equal(t, 0, gh.Current().Creatures.Len())

	_, ok = m.Get("missing")
	require.False(t, ok)
}

func TestGameHostPerformUncheckedAppliesAndLogs(t *testing.T) {
	gh := New(zaptest.NewLogger(t)).Create("g1", game.New(grid.Realistic))
	c := newTestCreature("Orin")

	next, logs, err := gh.PerformUnchecked(game.GameCommand{Kind: game.CommandCreateCreature, NewCreature: c}, dice.NewMockRoller(1))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, 1, next.Creatures.Len())
	require.Equal(t, 1, gh.Current().Creatures.Len())
}

func TestGameHostPerformUncheckedPropagatesError(t *testing.T) {
	gh := New(zaptest.NewLogger(t)).Create("g1", game.New(grid.Realistic))

	_, _, err := gh.PerformUnchecked(game.GameCommand{Kind: game.CommandRemoveCreature, CreatureID: "missing"}, nil)
	require.Error(t, err)
	require.True(t, gameerr.Is(err, gameerr.CodeCreatureNotFound))
}

func TestGameHostWaitWakesOnSuccessfulCommand(t *testing.T) {
	gh := New(zaptest.NewLogger(t)).Create("g1", game.New(grid.Realistic))

	woke := make(chan game.Game, 1)
	go func() {
		woke <- gh.Wait(context.Background(), time.Second)
	}()

	// give the waiter time to park before the command fires.
	time.Sleep(10 * time.Millisecond)

	c := newTestCreature("Orin")
	_, _, err := gh.PerformUnchecked(game.GameCommand{Kind: game.CommandCreateCreature, NewCreature: c}, dice.NewMockRoller(1))
	require.NoError(t, err)

	select {
	case g := <-woke:
		require.Equal(t, 1, g.Creatures.Len())
	case <-time.After(time.Second):
		t.Fatal("Wait did not wake after successful command")
	}
}

func TestGameHostWaitTimesOut(t *testing.T) {
	gh := New(zaptest.NewLogger(t)).Create("g1", game.New(grid.Realistic))

	start := time.Now()
	gh.Wait(context.Background(), 20*time.Millisecond)
	require.WithinDuration(t, start.Add(20*time.Millisecond), time.Now(), 200*time.Millisecond)
}

func TestGameHostWaitWokenByContextCancel(t *testing.T) {
	gh := New(zaptest.NewLogger(t)).Create("g1", game.New(grid.Realistic))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		gh.Wait(ctx, 5*time.Second)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after context cancellation")
	}
}

func TestManagerRemoveWakesParkedWaiters(t *testing.T) {
	m := New(zaptest.NewLogger(t))
	gh := m.Create("g1", game.New(grid.Realistic))

	done := make(chan struct{})
	go func() {
		gh.Wait(context.Background(), 5*time.Second)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	m.Remove("g1")

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Remove")
	}
}
