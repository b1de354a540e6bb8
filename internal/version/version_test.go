package version

import (
	"strings"
	"testing"
)

func TestShortCommit(t *testing.T) {
	if got := shortCommit("0123456789abcdef"); got != "0123456789ab" {
		t.Fatalf("unexpected short commit: %q", got)
	}
	if got := shortCommit("abc"); got != "abc" {
		t.Fatalf("short commits should be unchanged: %q", got)
	}
}

func TestResolvePrefersLdflags(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version = "v1.2.3"
	Commit = "feedfacecafebeef"

	info := Resolve()
	if info.Version != "v1.2.3" || info.Commit != "feedfacecafebeef" {
		t.Fatalf("ldflags values not used: %+v", info)
	}
	if s := String(); !strings.HasPrefix(s, "v1.2.3 (feedfacecafe") {
		t.Fatalf("unexpected version string: %q", s)
	}
}

func TestResolveAlwaysHasVersion(t *testing.T) {
	oldVersion, oldBuildTime := Version, BuildTime
	t.Cleanup(func() { Version, BuildTime = oldVersion, oldBuildTime })

	Version = ""
	BuildTime = ""
	if info := Resolve(); info.Version == "" {
		t.Fatal("expected a fallback version")
	}
}
