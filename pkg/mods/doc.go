// Package mods builds the per-scan snapshot of installed mods.
//
// Scan reads every manifest in a mod directory and returns a Snapshot: the
// name to record map and the name to dependency list map. A snapshot is a
// plain value; each scan builds a new one and nothing is carried over from
// a previous scan. Manifests that cannot be read are reported as warnings.
package mods
