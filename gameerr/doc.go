// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package gameerr

// Scope:
//   - One Code per GameError variant named in the error handling design.
//   - Domain constructors producing a ready-to-return *Error per variant.
//   - GetCode/Is for callers that branch on failure kind.
//
// Non-Goals:
//   - Call-stack capture or structured logging: that's the host's job;
//     BuggyProgram callers attach whatever Meta the log line needs.
