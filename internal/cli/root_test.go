package cli

import (
	"testing"
)

// TestSetVersion tests the build-time version override
func TestSetVersion(t *testing.T) {
	SetVersion("1.2.0", "abc123", "2026-01-01")

	if version != "1.2.0" {
		t.Errorf("Expected version %q, got %q", "1.2.0", version)
	}
	if commit != "abc123" {
		t.Errorf("Expected commit %q, got %q", "abc123", commit)
	}
	if date != "2026-01-01" {
		t.Errorf("Expected date %q, got %q", "2026-01-01", date)
	}
}

// TestSetVersionEmpty tests that empty values are applied as given
func TestSetVersionEmpty(t *testing.T) {
	SetVersion("", "", "")

	if version != "" {
		t.Errorf("Expected empty version, got %q", version)
	}
	if commit != "" {
		t.Errorf("Expected empty commit, got %q", commit)
	}
	if date != "" {
		t.Errorf("Expected empty date, got %q", date)
	}
}
