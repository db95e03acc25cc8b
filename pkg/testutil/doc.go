// Package testutil provides utilities for testing modlauncher components.
//
// Key components:
//   - NewTestFS: afero-backed in-memory filesystem behind types.FS
//   - FailingFS: wraps a types.FS and injects errors for chosen paths
//   - GameDir: declarative builder for a game root with mods and conflict-files
//
// All test data should be defined inline, not in external files.
package testutil
