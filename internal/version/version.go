// Package version provides build-time version information.
package version

import "fmt"

// These variables are set at build time using -ldflags
var (
	// Version is the semantic version
	Version = "0.3.0"

	// BuildTime is the UTC time when the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

// String formats the version for banners and the version command.
func String() string {
	return fmt.Sprintf("matchline %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
