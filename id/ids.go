// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package id

import "github.com/google/uuid"

// CreatureID uniquely identifies a creature.
type CreatureID string

// NewCreatureID generates a fresh CreatureID.
func NewCreatureID() CreatureID { return CreatureID(uuid.New().String()) }

// String returns the underlying token.
func (i CreatureID) String() string { return string(i) }

// SceneID uniquely identifies a scene.
type SceneID string

// NewSceneID generates a fresh SceneID.
func NewSceneID() SceneID { return SceneID(uuid.New().String()) }

// String returns the underlying token.
func (i SceneID) String() string { return string(i) }

// AbilityID uniquely identifies an ability.
type AbilityID string

// NewAbilityID generates a fresh AbilityID.
func NewAbilityID() AbilityID { return AbilityID(uuid.New().String()) }

// String returns the underlying token.
func (i AbilityID) String() string { return string(i) }

// ConditionID uniquely identifies an applied condition instance on a creature.
type ConditionID string

// NewConditionID generates a fresh ConditionID.
func NewConditionID() ConditionID { return ConditionID(uuid.New().String()) }

// String returns the underlying token.
func (i ConditionID) String() string { return string(i) }

// ItemID uniquely identifies an item definition.
type ItemID string

// NewItemID generates a fresh ItemID.
func NewItemID() ItemID { return ItemID(uuid.New().String()) }

// String returns the underlying token.
func (i ItemID) String() string { return string(i) }

// AttrID uniquely identifies a creature attribute (skill/stat) slot.
type AttrID string

// NewAttrID generates a fresh AttrID.
func NewAttrID() AttrID { return AttrID(uuid.New().String()) }

// String returns the underlying token.
func (i AttrID) String() string { return string(i) }

// PlayerID uniquely identifies a registered player.
type PlayerID string

// NewPlayerID generates a fresh PlayerID.
func NewPlayerID() PlayerID { return PlayerID(uuid.New().String()) }

// String returns the underlying token.
func (i PlayerID) String() string { return string(i) }

// FolderID uniquely identifies a node in the campaign content tree.
type FolderID string

// NewFolderID generates a fresh FolderID.
func NewFolderID() FolderID { return FolderID(uuid.New().String()) }

// String returns the underlying token.
func (i FolderID) String() string { return string(i) }
