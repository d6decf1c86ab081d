package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func withBuildInfo(t *testing.T, info *debug.BuildInfo) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestResolveFromBuildInfo(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
		},
	})

	v, c, d := Resolve()
	if v != "v0.3.0" || c != "abc123" || d != "2024-05-01T10:00:00Z" {
		t.Errorf("Resolve() = %q, %q, %q", v, c, d)
	}
}

func TestResolveKeepsStampedValues(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{
		Main:     debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})
	Version, Commit = "v1.0.0", "feed"
	t.Cleanup(func() { Version, Commit = "dev", "none" })

	v, c, _ := Resolve()
	if v != "v1.0.0" || c != "feed" {
		t.Errorf("Resolve() = %q, %q; want stamped values", v, c)
	}
}

func TestResolveDevelBuild(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if v, _, _ := Resolve(); v != "dev" {
		t.Errorf("Resolve() version = %q, want dev", v)
	}

	withBuildInfo(t, nil)
	if v, c, d := Resolve(); v != "dev" || c != "none" || d != "unknown" {
		t.Errorf("Resolve() without build info = %q, %q, %q", v, c, d)
	}
}

func TestTemplate(t *testing.T) {
	withBuildInfo(t, nil)
	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version dev\n") {
		t.Errorf("Template() = %q", got)
	}
	if !strings.Contains(String(), "commit: none") {
		t.Errorf("String() = %q", String())
	}
}
