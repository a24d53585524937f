// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package folder implements the campaign content tree: a path-addressed
// hierarchy of Folder nodes holding scenes, creatures, notes, abilities,
// classes, and items. Because a Folder's Subfolders map only ever points
// down the tree, cycles are impossible by construction — there is no API
// that lets a folder reference an ancestor.
//
// Scope:
//   - Path parsing/validation, reusing the module's identifier-character
//     rules (letters, digits, underscore, dash) per path segment.
//   - Path-level Move, Copy, Delete, Rename, and folder creation.
//
// Non-Goals:
//   - Persistence of the tree; callers serialize Tree themselves.
//   - Access control over who may reach into which folder.
package folder
