package version

import "fmt"

// These variables are set via ldflags during build, e.g.
// -ldflags "-X github.com/philipparndt/meshbake/version.Version=1.2.0"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with commit and build date when known
func GetFullVersion() string {
	if Version == "dev" || GitCommit == "unknown" {
		return Version
	}
	if BuildDate == "unknown" {
		return fmt.Sprintf("%s (%s)", Version, GitCommit)
	}
	return fmt.Sprintf("%s (%s, built %s)", Version, GitCommit, BuildDate)
}
