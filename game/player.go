// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package game

import "github.com/ironmoor/tactics/id"

// Player is a registered player: the creatures granted to them and,
// optionally, the scene they're currently focused on.
type Player struct {
	ID           id.PlayerID
	CreatureIDs  []id.CreatureID
	FocusedScene *id.SceneID
}

// Key implements id.Keyed.
func (p Player) Key() id.PlayerID { return p.ID }

func (p Player) clone() Player {
	next := p
	next.CreatureIDs = append([]id.CreatureID(nil), p.CreatureIDs...)
	if p.FocusedScene != nil {
		sid := *p.FocusedScene
		next.FocusedScene = &sid
	}
	return next
}

func (p Player) withGrantedCreatures(cids []id.CreatureID) Player {
	next := p.clone()
	next.CreatureIDs = append(next.CreatureIDs, cids...)
	return next
}

func (p Player) withoutCreatures(cids []id.CreatureID) Player {
	remove := make(map[id.CreatureID]struct{}, len(cids))
	for _, c := range cids {
		remove[c] = struct{}{}
	}
	next := p.clone()
	filtered := next.CreatureIDs[:0:0]
	for _, c := range next.CreatureIDs {
		if _, ok := remove[c]; !ok {
			filtered = append(filtered, c)
		}
	}
	next.CreatureIDs = filtered
	return next
}

func (p Player) withFocusedScene(sid *id.SceneID) Player {
	next := p.clone()
	next.FocusedScene = sid
	return next
}
