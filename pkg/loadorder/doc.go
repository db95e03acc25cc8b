// Package loadorder resolves the order in which mods sharing a
// conflict-file are applied.
//
// Only dependencies between candidates constrain the order; a dependency on a
// mod outside the candidate set is ignored. Among mods that are free to go
// next, the one listed first in the candidate set goes first. When no valid
// order exists the candidates are returned in plain ordinal order and a
// warning is recorded; resolution itself never fails.
package loadorder
