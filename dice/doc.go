// Package dice implements dice expression evaluation: a sum of terms
// n·d(s) + k, rolled through an injected Roller so the command layer
// can use a cryptographically secure generator in production and a
// MockRoller for deterministic tests. Log replay never rolls dice —
// rolled values are already recorded in the logs that produced them.
//
// Scope:
//   - Notation parsing of a single term ("3d6+2", "d20", "3d8-2").
//   - Pool.Roll producing individual face results plus their total.
//   - Dice::flat(n) and Dice::expr(n, s) constructors.
//
// Non-Goals:
//   - Advantage/disadvantage, critical-hit interpretation, and other
//     rules about what a roll means: that's the caller's concern.
package dice
