// Package misc has build information of the program.
package misc

import (
	"runtime/debug"
)

// Set with -ldflags "-X pagelay/misc.version=... -X pagelay/misc.gitHash=...".
var (
	appName = "pagelay"
	version = "dev"
	gitHash = ""
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns commit of the build, falling back to VCS information
// recorded by the go tool.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
