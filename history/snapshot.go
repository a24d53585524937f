// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package history

import "github.com/ironmoor/tactics/game"

// Snapshot is a baseline Game plus every GameLog appended since.
type Snapshot struct {
	Game game.Game
	Logs []game.GameLog
}

// maxSnapshots bounds the snapshot deque (oldest dropped once exceeded).
const maxSnapshots = 1000

// maxSegmentLogs is the per-snapshot log-count threshold: appending a
// batch that would push a segment past this rolls a fresh snapshot first.
const maxSegmentLogs = 100
