// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package history

import (
	"github.com/ironmoor/tactics/game"
	"github.com/ironmoor/tactics/gameerr"
)

// Rollback reconstructs the game state at (si, li) and makes it
// CurrentGame, then appends a Rollback log to the active snapshot
// segment (no new snapshot is rolled for it, regardless of segment
// length — rollback never needs replay of its own log).
func (a *App) Rollback(si, li int) (game.Game, error) {
	g, err := a.rollbackTo(si, li, nil)
	if err != nil {
		return a.CurrentGame, err
	}
	a.CurrentGame = g

	if len(a.Snapshots) == 0 {
		a.Snapshots = append(a.Snapshots, Snapshot{Game: g})
	}
	last := &a.Snapshots[len(a.Snapshots)-1]
	last.Logs = append(last.Logs, game.GameLog{
		Kind:                game.LogRollback,
		RollbackSnapshotIdx: si,
		RollbackLogIdx:      li,
	})
	return a.CurrentGame, nil
}

// rollbackTo reconstructs the state at (si, li): fetch snapshot si,
// fold the first li of its logs starting from baseline (snapshots[si].Game,
// unless override is non-nil). A nested Rollback(si', li') log
// encountered along the way recurses using the SAME baseline rather
// than snapshots[si'].Game — the documented rollback-through-rollback
// quirk, preserved rather than fixed (see design notes).
func (a *App) rollbackTo(si, li int, override *game.Game) (game.Game, error) {
	if si < 0 || si >= len(a.Snapshots) {
		return game.Game{}, gameerr.HistoryNotFound(si, li)
	}
	snap := a.Snapshots[si]
	if li < 0 || li >= len(snap.Logs) {
		return game.Game{}, gameerr.HistoryNotFound(si, li)
	}

	baseline := snap.Game
	if override != nil {
		baseline = *override
	}

	g := baseline
	for i := 0; i < li; i++ {
		l := snap.Logs[i]
		if l.Kind == game.LogRollback {
			nested, err := a.rollbackTo(l.RollbackSnapshotIdx, l.RollbackLogIdx, &baseline)
			if err != nil {
				return game.Game{}, err
			}
			g = nested
			continue
		}
		g = game.ApplyLog(g, l)
	}
	return g, nil
}
