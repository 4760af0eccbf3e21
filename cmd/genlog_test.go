// ABOUTME: Tests for the genlog command
// ABOUTME: Verifies store validation and the no-repositories case

package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunGenlog_NoRepositories(t *testing.T) {
	setTestFlags(t, writeStore(t, testStore()), "")

	dir := t.TempDir()
	var buf bytes.Buffer
	if code := runGenlog(&buf, "alice", dir); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "No git repositories found in "+dir) {
		t.Errorf("expected empty notice, got %q", buf.String())
	}
}

func TestRunGenlog_RequiresStore(t *testing.T) {
	setTestFlags(t, filepath.Join(t.TempDir(), "nope.json"), "")

	var buf bytes.Buffer
	if code := runGenlog(&buf, "alice", t.TempDir()); code != 1 {
		t.Fatalf("expected exit 1, got %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "Run 'tracsis set-creds'") {
		t.Errorf("expected set-creds hint, got %q", buf.String())
	}
}
