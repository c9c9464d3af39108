// Package version provides build-time version information for chromat.
// Version information is injected at build time using ldflags; binaries
// built with "go install" fall back to the module build info.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const unknown = "unknown"

var (
	// Version is the semantic version of the application.
	// Injected at build time via: -ldflags "-X github.com/jmylchreest/chromat/internal/version.Version=x.y.z".
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = unknown

	// Date is the build date in RFC3339 format.
	Date = unknown
)

// Info holds all version information for the application.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns all version information, filling values that were not
// injected from the embedded build info.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		fromBuildInfo(&info, bi)
	}
	return info
}

func fromBuildInfo(info *Info, bi *debug.BuildInfo) {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.Commit == unknown:
			info.Commit = s.Value
		case s.Key == "vcs.time" && info.Date == unknown:
			info.Date = s.Value
		}
	}
}

// String returns a human-readable version string.
func String() string {
	return GetInfo().String()
}

func (i Info) String() string {
	if i.Commit != unknown && i.Date != unknown {
		commit := i.Commit
		if len(commit) > 8 {
			commit = commit[:8]
		}
		return fmt.Sprintf("chromat version %s (commit: %s, built: %s, %s, %s)",
			i.Version, commit, i.Date, i.GoVersion, i.Platform)
	}
	return fmt.Sprintf("chromat version %s (%s, %s)", i.Version, i.GoVersion, i.Platform)
}

// Short returns a short version string suitable for CLI output.
func Short() string {
	return GetInfo().Version
}
