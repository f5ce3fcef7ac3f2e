// Package buildinfo holds build identifiers injected with
// -ldflags "-X raycaster/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for window titles and log lines.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// Line describes the build on one line.
func Line() string {
	return fmt.Sprintf("raycaster %s (commit %s, built %s)", Short(), Commit, Date)
}
