package version

// Build metadata, overridden at link time.
var (
	// Version is set via -ldflags "-X hoteldisplay/version.Version=x.x.x"
	Version = "dev"

	// CommitHash is set via -ldflags "-X hoteldisplay/version.CommitHash=xxx"
	CommitHash = "unknown"

	// BuildTime is set via -ldflags "-X hoteldisplay/version.BuildTime=xxx"
	BuildTime = "unknown"
)

// GetFullVersion returns the version with the short commit hash when known.
func GetFullVersion() string {
	if CommitHash == "unknown" || len(CommitHash) < 7 {
		return Version
	}
	return Version + " (" + CommitHash[:7] + ")"
}

// GetBuildInfo returns build metadata for --version.
func GetBuildInfo() string {
	return "Version: " + Version + "\nCommit: " + CommitHash + "\nBuild Time: " + BuildTime
}
