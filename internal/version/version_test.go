package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}

	info := Info{Version: "dev", Commit: unknown, Date: unknown, GoVersion: "go1.25.1", Platform: "linux/amd64"}
	fromBuildInfo(&info, bi)

	want := "chromat version v1.2.3 (commit: 01234567, built: 2026-01-02T03:04:05Z, go1.25.1, linux/amd64)"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestInjectedValuesWin(t *testing.T) {
	bi := &debug.BuildInfo{
		Main:     debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffff"}},
	}

	info := Info{Version: "v2.0.0", Commit: "abc", Date: unknown}
	fromBuildInfo(&info, bi)

	if info.Version != "v2.0.0" || info.Commit != "abc" {
		t.Errorf("injected values overwritten: %+v", info)
	}
	if !strings.HasPrefix(info.String(), "chromat version v2.0.0 (") {
		t.Errorf("String() = %q", info.String())
	}
}

func TestDevelBuildKeepsDev(t *testing.T) {
	info := Info{Version: "dev", Commit: unknown, Date: unknown}
	fromBuildInfo(&info, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if info.Version != "dev" {
		t.Errorf("Version = %q, want dev", info.Version)
	}
}
