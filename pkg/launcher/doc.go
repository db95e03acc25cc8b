// Package launcher assembles a game launch from a mod selection.
//
// A launch runs in three steps:
//
//  1. Prepare scans the mod directory, finds the selected mods that ship
//     common/event_modifiers.txt, resolves their load order and merges
//     those files into the reserved z_launcher mod.
//  2. BuildCommand turns the final mod list into the game command line.
//  3. Launch starts the game and returns a Task that completes when the
//     process exits.
//
// The merged file is written only after every input has been read, so a
// failed read never leaves a half-written output behind.
package launcher
