// Package misc keeps build time information about the program.
package misc

import (
	"runtime/debug"
)

// Set with -ldflags "-X mwc/misc.version=... -X mwc/misc.gitHash=...".
var (
	version = ""
	gitHash = ""
)

const appName = "mwc"

func GetAppName() string {
	return appName
}

// GetVersion returns program version, falling back to module version from
// build information when not set at link time.
func GetVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns commit the program was built from.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
