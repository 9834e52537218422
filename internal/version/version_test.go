package version

import (
	"strings"
	"testing"
)

func TestVersionHasDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if !strings.Contains(Version, ".") {
		t.Errorf("Version %q does not look like a semantic version", Version)
	}
}

func TestBuildMetadataCanBeOverridden(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() {
		GitCommit, BuildDate = origCommit, origDate
	}()

	GitCommit = "abc123def456"
	BuildDate = "2026-08-23T10:30:00Z"

	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q", GitCommit)
	}
	if BuildDate != "2026-08-23T10:30:00Z" {
		t.Errorf("BuildDate = %q", BuildDate)
	}
}
