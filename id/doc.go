// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package id provides opaque, universally unique identifiers for every
// entity kind the engine tracks, plus the indexed container used to
// store values keyed by their own intrinsic id.
//
// Scope:
//   - One distinct Go type per entity kind (CreatureID, SceneID, ...)
//     so a CreatureID can never be passed where an AbilityID is expected.
//   - Fresh-on-creation generation backed by a UUID.
//   - A generic Indexed[K, V] map that derives its own keys from stored
//     values, matching the take-transform-reinsert mutate contract.
//
// Non-Goals:
//   - Ordering guarantees beyond equality and hash.
//   - Persistence/serialization format (callers marshal the underlying string).
package id
