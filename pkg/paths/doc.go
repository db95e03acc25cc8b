// Package paths provides centralized path handling for modlauncher.
//
// Layout maps the game installation (mod directory, per-mod conflict-files,
// the reserved merge-output mod) and the per-user documents folder where the
// game keeps settings and caches. Launcher config and state locations follow
// the XDG Base Directory specification.
package paths
