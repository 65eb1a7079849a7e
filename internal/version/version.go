// Package version holds the build information of the dotsync binaries.
package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/dotsync/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/dotsync/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/dotsync/internal/version.Date={{.Date}}
)

// String returns the one-line version banner
func String() string {
	return fmt.Sprintf("dotsync %s (commit %s, built %s)", Version, Commit, Date)
}
