// Package types defines the core types and interfaces used throughout modlauncher.
// This includes the FS abstraction, the per-scan ModRecord, the conflict-file
// entry and merged document types, and the warning values threaded through
// the merge pipeline.
package types
