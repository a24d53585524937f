// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package host

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ironmoor/tactics/dice"
	"github.com/ironmoor/tactics/game"
	"github.com/ironmoor/tactics/gameerr"
	"github.com/ironmoor/tactics/history"
)

// GameID names one running game within a Manager. The engine itself
// has no notion of multiple games — history.App owns exactly one —
// so this id exists only at the host boundary, to multiplex several
// App instances under one process.
type GameID string

// defaultWakeupTimeout is used by Wait when the caller passes zero.
const defaultWakeupTimeout = 30 * time.Second

// Manager owns every running GameHost, keyed by GameID. The zero
// Manager is not usable; construct with New.
type Manager struct {
	log *zap.Logger

	mu    sync.Mutex
	games map[GameID]*GameHost
}

// New constructs a Manager that logs through log.
func New(log *zap.Logger) *Manager {
	return &Manager{log: log, games: map[GameID]*GameHost{}}
}

// Create registers a fresh GameHost wrapping g under id, replacing any
// prior host registered under the same id.
func (m *Manager) Create(id GameID, g game.Game) *GameHost {
	gh := &GameHost{
		id:  id,
		app: history.New(g),
		log: m.log.With(zap.String("game_id", string(id))),
	}
	m.mu.Lock()
	m.games[id] = gh
	m.mu.Unlock()
	return gh
}

// Get returns the GameHost registered under id, if any.
func (m *Manager) Get(id GameID) (*GameHost, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	gh, ok := m.games[id]
	return gh, ok
}

// Remove unregisters the GameHost under id. Any goroutines parked in
// Wait are woken with no further signal expected.
func (m *Manager) Remove(id GameID) {
	m.mu.Lock()
	gh, ok := m.games[id]
	delete(m.games, id)
	m.mu.Unlock()
	if ok {
		gh.closeWaiters()
	}
}

// GameHost serializes every command against one history.App behind a
// mutex, logs the outcome, and wakes any long-poll waiters parked on
// Wait after each successful command. The transformation itself runs
// synchronously while the mutex is held; it is released before the
// next command is accepted.
type GameHost struct {
	id  GameID
	log *zap.Logger

	mu  sync.Mutex
	app *history.App

	waitMu  sync.Mutex
	waiters []chan struct{}
}

// Current returns the game's current state. Safe for concurrent use;
// briefly takes the command mutex so it never observes a half-applied
// command.
func (h *GameHost) Current() game.Game {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.app.CurrentGame
}

// PerformUnchecked serializes cmd against the underlying App: it
// blocks on the command mutex, delegates to App.PerformUnchecked,
// logs the outcome, and — on success — wakes every waiter parked in
// Wait. Engine errors are logged and returned to the caller verbatim;
// they are never retried.
func (h *GameHost) PerformUnchecked(cmd game.GameCommand, roller dice.Roller) (game.Game, []game.GameLog, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	g, logs, err := h.app.PerformUnchecked(cmd, roller)
	if err != nil {
		h.logError(cmd.Kind, err)
		return g, logs, err
	}

	h.log.Debug("command applied",
		zap.String("command", string(cmd.Kind)),
		zap.Int("log_count", len(logs)),
	)
	h.wake()
	return g, logs, nil
}

// Rollback reconstructs and replaces the current game at (si, li),
// logs the outcome, and wakes waiters on success.
func (h *GameHost) Rollback(si, li int) (game.Game, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	g, err := h.app.Rollback(si, li)
	if err != nil {
		h.logError(game.CommandKind("rollback"), err)
		return g, err
	}
	h.log.Info("rollback applied", zap.Int("snapshot_idx", si), zap.Int("log_idx", li))
	h.wake()
	return g, nil
}

func (h *GameHost) logError(cmd game.CommandKind, err error) {
	code := gameerr.GetCode(err)
	fields := []zap.Field{zap.String("command", string(cmd)), zap.String("code", string(code))}
	if code == gameerr.CodeBuggyProgram {
		var ge *gameerr.Error
		if e, ok := err.(*gameerr.Error); ok {
			ge = e
			for k, v := range ge.Meta {
				fields = append(fields, zap.Any(k, v))
			}
		}
		h.log.Error("buggy program: internal invariant violated", append(fields, zap.Error(err))...)
		return
	}
	h.log.Warn("command rejected", append(fields, zap.Error(err))...)
}

// Wait parks until the next successful command wakes this GameHost,
// the context is cancelled, or timeout elapses (defaultWakeupTimeout
// if timeout is zero). It returns the game's state as of return,
// which the caller must re-read rather than assume it reflects the
// exact command that woke it: this is a signal-only channel, not a
// queue, so intermediate changes between parks may be missed.
func (h *GameHost) Wait(ctx context.Context, timeout time.Duration) game.Game {
	if timeout <= 0 {
		timeout = defaultWakeupTimeout
	}
	slot := h.addWaiter()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-slot:
	case <-ctx.Done():
	case <-timer.C:
	}
	return h.Current()
}

// addWaiter registers a fresh one-shot slot and returns it.
func (h *GameHost) addWaiter() chan struct{} {
	slot := make(chan struct{})
	h.waitMu.Lock()
	h.waiters = append(h.waiters, slot)
	h.waitMu.Unlock()
	return slot
}

// wake drains every parked slot, delivering a single close (and
// therefore a single wake signal) to each.
func (h *GameHost) wake() {
	h.waitMu.Lock()
	waiters := h.waiters
	h.waiters = nil
	h.waitMu.Unlock()

	for _, w := range waiters {
		close(w)
	}
}

func (h *GameHost) closeWaiters() {
	h.wake()
}
