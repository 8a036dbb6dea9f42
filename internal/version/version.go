// Package version holds build identifiers stamped in at link time via
// -ldflags "-X github.com/msomdec/tasklist/internal/version.Version=...".
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)
