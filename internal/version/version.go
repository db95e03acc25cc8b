// Package version holds build metadata injected at link time:
//
//	-X github.com/arthur-debert/modlauncher/internal/version.Version=v1.2.0
package version

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short is the version alone, with a commit suffix for untagged builds.
func Short() string {
	if Version == "dev" && Commit != "unknown" {
		return fmt.Sprintf("dev+%.7s", Commit)
	}
	return Version
}

// Info is the multi-line block printed by `modlauncher version`.
func Info() string {
	return fmt.Sprintf("modlauncher version %s\n  commit: %s\n  built:  %s\n", Short(), Commit, Date)
}
