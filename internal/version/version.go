// Package version holds build metadata, overridden with -ldflags -X.
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "dev"             // ex: v0.1.0
	Commit    = "none"            // ex: abcd123
	BuildDate = "unknown"         // ex: 2026-10-19T18:42:00Z
	GoVersion = runtime.Version() // go version
)

// String is the one-line build summary printed at startup and by
// "devdocs version".
func String() string {
	return fmt.Sprintf("devdocs %s (commit=%s, built=%s, go=%s)", Version, Commit, BuildDate, GoVersion)
}
