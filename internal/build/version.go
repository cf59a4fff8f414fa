// Package build provides version and build information for lcui-release.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

import (
	"fmt"
	"runtime"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// Summary returns the multi-line build description printed by `lcui-release version`.
// Development builds are marked on the first line.
func Summary() string {
	version := Version
	if IsDevBuild() {
		version += " (development build)"
	}
	return fmt.Sprintf("lcui-release %s\ncommit: %s\nbuilt: %s\ngo: %s\nplatform: %s/%s\n",
		version, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
