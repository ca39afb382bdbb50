// Package version carries build metadata injected with -ldflags.
package version

// Set with -ldflags "-X qravy/internal/shared/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
)

// String returns "version (commit)".
func String() string {
	return Version + " (" + Commit + ")"
}
