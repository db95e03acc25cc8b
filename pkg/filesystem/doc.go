// Package filesystem provides the types.FS implementations used by
// modlauncher. Both are thin adapters over afero: NewOS wraps the host
// filesystem for the CLI and NewMemory an in-memory one for tests.
package filesystem
