// ABOUTME: Tests for the git commit exporter
// ABOUTME: Covers repo discovery, log parsing and CSV output

package gitlog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRepos(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "proj-a", ".git"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested", "proj-b", ".git"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "not-a-repo"), 0755))

	repos, err := FindRepos(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "proj-a"),
		filepath.Join(root, "nested", "proj-b"),
	}, repos)
}

func TestFindRepos_MissingRoot(t *testing.T) {
	_, err := FindRepos(filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestParseLog(t *testing.T) {
	out := "a1b2c3d - Abu Syeed, 2 hours ago : Fix login redirect\n" +
		"d4e5f6a - Abu Syeed, 5 hours ago : feat: add csv export\n" +
		"not a log line\n"

	commits := ParseLog(out, "2026-08-31")
	require.Len(t, commits, 2)
	assert.Equal(t, Commit{Title: "Fix login redirect", Date: "2026-08-31", Hours: 1.0}, commits[0])
	assert.Equal(t, Commit{Title: "feat: add csv export", Date: "2026-08-31", Hours: 1.0}, commits[1])
}

func TestParseLog_EmptyOutput(t *testing.T) {
	assert.Empty(t, ParseLog("", "2026-08-31"))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	commits := []Commit{
		{Title: "Fix login redirect", Date: "2026-08-31", Hours: 1.0},
		{Title: "Title, with comma", Date: "2026-08-31", Hours: 1.0},
	}
	require.NoError(t, WriteCSV(&buf, commits))

	got := buf.String()
	assert.Contains(t, got, "title,date,log_hour\n")
	assert.Contains(t, got, "Fix login redirect,2026-08-31,1.0\n")
	assert.Contains(t, got, "\"Title, with comma\",2026-08-31,1.0\n")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "git_commits_asyeed_2026-08-31.csv", FileName("asyeed", "2026-08-31"))
}
