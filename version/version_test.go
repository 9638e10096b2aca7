package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = oldVersion, oldCommit, oldDate }()

	Version = "dev"
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("GetFullVersion() = %q, want %q", got, "dev")
	}

	Version, GitCommit, BuildDate = "1.2.0", "abc123", "2026-10-01"
	want := "1.2.0 (commit abc123, built 2026-10-01)"
	if got := GetFullVersion(); got != want {
		t.Errorf("GetFullVersion() = %q, want %q", got, want)
	}
}
