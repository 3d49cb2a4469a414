package version

import "fmt"

var (
	// Version is the release version, set at build time.
	Version = "0.1.0"

	// GitCommit is the commit the binary was built from, set at build time
	// with -ldflags "-X github.com/aqualab/meterconsole/internal/version.GitCommit=...".
	GitCommit = ""
)

// FullVersion returns the version with the commit appended when known.
func FullVersion() string {
	if GitCommit == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, GitCommit)
}
