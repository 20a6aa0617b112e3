// Package version reports the build version of guestpass.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version and Commit can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/ob-cheng/Guest-Pass/internal/version.Version=v1.0.0"
//
// Unset values are filled from the module build info, then default to "dev"
// and "unknown".
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		fromBuildInfo(debug.ReadBuildInfo())
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

const shortCommitLen = 7

func fromBuildInfo(info *debug.BuildInfo, ok bool) {
	if !ok || info == nil {
		return
	}

	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	var revision, modified string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}

	if Commit == "" && revision != "" {
		Commit = revision
		if len(Commit) > shortCommitLen {
			Commit = Commit[:shortCommitLen]
		}
		if modified == "true" {
			Commit += "-dirty"
		}
	}
}

// Full returns the version string including the commit.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
