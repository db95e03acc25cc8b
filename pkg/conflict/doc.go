// Package conflict parses and merges the conflict-prone game data file
// (common/event_modifiers.txt) shared by several mods.
//
// Parse turns one file into ordered key/value entries. Values that open more
// braces than they close continue over the following lines until the braces
// balance, so a value may be a nested multi-line block.
//
// Merge combines the entries of several mods in load order. A key keeps the
// position of its first appearance and takes the value of its last
// appearance. A mod whose file cannot be read is skipped with a warning.
package conflict
