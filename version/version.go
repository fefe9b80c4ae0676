// Package version exposes build metadata for the CLI's --version output.
package version

import (
	"runtime"
	"runtime/debug"
)

// Version is the application version, set via ldflags.
var Version string

// String returns a human-readable version line combining the ldflags
// version (when set), the VCS revision, and the Go toolchain version.
func String() string {
	s := Version
	if s == "" {
		s = "devel"
	}

	return s + " (" + revision() + ", " + runtime.Version() + ")"
}

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	rev := "unknown"
	modified := false

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if modified {
		rev += "-dirty"
	}

	return rev
}
