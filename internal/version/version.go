// Package version exposes build information injected via ldflags, e.g.
// -ldflags "-X github.com/aguscruiz/color-palette-generator/internal/version.Version=x.y.z".
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// String returns the full human-readable version line.
func String() string {
	platform := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	if Commit != "unknown" && Date != "unknown" {
		return fmt.Sprintf("color-palette-generator version %s (commit: %s, built: %s, %s, %s)",
			Version, shortCommit(), Date, runtime.Version(), platform)
	}
	return fmt.Sprintf("color-palette-generator version %s (%s, %s)", Version, runtime.Version(), platform)
}

// Short returns just the version number, for cobra's --version flag.
func Short() string {
	return Version
}

func shortCommit() string {
	if len(Commit) > 8 {
		return Commit[:8]
	}
	return Commit
}
