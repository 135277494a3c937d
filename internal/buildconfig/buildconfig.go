package buildconfig

import "github.com/pillarcoach/coachengine/internal/content"

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "unknown"
)

// Version returns the build version
func Version() string {
	return version
}

// Commit returns the git commit hash
func Commit() string {
	return commit
}

// VersionInfo returns the binary version plus the embedded content version,
// which changes independently of the code.
func VersionInfo() map[string]string {
	return map[string]string{
		"version":         version,
		"commit":          commit,
		"content_version": content.Default().Version,
	}
}
