// Package stringx provides string helpers shared by the minilang packages.
//
// Package: stringx
// Title: String Utilities
// Description: Blank checks, rune-safe prefix and truncation, and padding. All functions operate on runes, never on bytes,
//              so multi-byte input is never cut in the middle of a character.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.2.0: Reduced to the helpers used by the compiler and CLI, added Head
package stringx
