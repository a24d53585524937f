// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package folder

import (
	"github.com/ironmoor/tactics/id"
)

// Folder is one node of the campaign content tree: a bag of content
// references plus named child folders.
type Folder struct {
	Scenes     []id.SceneID
	Creatures  []id.CreatureID
	Notes      map[string]string
	Abilities  []id.AbilityID
	Classes    []string
	Items      []id.ItemID
	Subfolders map[string]*Folder
}

// NewFolder returns an empty, ready-to-use Folder.
func NewFolder() *Folder {
	return &Folder{
		Notes:      map[string]string{},
		Subfolders: map[string]*Folder{},
	}
}

// clone returns a deep copy of f and everything beneath it.
func (f *Folder) clone() *Folder {
	next := &Folder{
		Scenes:     append([]id.SceneID(nil), f.Scenes...),
		Creatures:  append([]id.CreatureID(nil), f.Creatures...),
		Abilities:  append([]id.AbilityID(nil), f.Abilities...),
		Classes:    append([]string(nil), f.Classes...),
		Items:      append([]id.ItemID(nil), f.Items...),
		Notes:      make(map[string]string, len(f.Notes)),
		Subfolders: make(map[string]*Folder, len(f.Subfolders)),
	}
	for k, v := range f.Notes {
		next.Notes[k] = v
	}
	for name, child := range f.Subfolders {
		next.Subfolders[name] = child.clone()
	}
	return next
}
