package version

import (
	"strings"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	return func() {
		Version = origVersion
		GitCommit = origCommit
		BuildTime = origBuildTime
	}
}

func TestGet_Defaults(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"
	GitCommit = ""
	BuildTime = ""

	info := Get()
	if info.Version != "dev" {
		t.Errorf("Version = %q, want dev", info.Version)
	}
	if info.IsRelease {
		t.Error("dev must not be a release")
	}
}

func TestGet_Release(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"
	GitCommit = "abc1234"
	BuildTime = "2026-01-15T10:30:00Z"

	info := Get()
	if !info.IsRelease {
		t.Error("1.2.0 must be a release")
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("GitCommit = %q", info.GitCommit)
	}
	if info.BuildDate.Year() != 2026 {
		t.Errorf("BuildDate year = %d", info.BuildDate.Year())
	}
}

func TestGet_DirtyVersionNotRelease(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0-dirty"

	if Get().IsRelease {
		t.Error("dirty version must not be a release")
	}
}

func TestShort(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"
	GitCommit = "abc1234"
	BuildTime = ""

	if got := Short(); got != "1.2.0-abc1234" {
		t.Errorf("Short() = %q, want 1.2.0-abc1234", got)
	}
}

func TestShort_NoCommit(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"
	GitCommit = ""
	BuildTime = ""

	if got := Short(); !strings.HasPrefix(got, "dev") {
		t.Errorf("Short() = %q, want dev prefix", got)
	}
}
