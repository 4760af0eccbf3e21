// ABOUTME: Git commit to CSV exporter for the genlog command
// ABOUTME: Scans a directory tree for repositories and exports a day's commits

package gitlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Commit is one exported row. Hours defaults to one hour per commit since
// git has no notion of effort.
type Commit struct {
	Title string
	Date  string
	Hours float64
}

// defaultHoursPerCommit is the effort attributed to each commit in the CSV.
const defaultHoursPerCommit = 1.0

// FindRepos walks root and returns the directories containing a .git
// directory. The .git trees themselves are not descended into.
func FindRepos(root string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("path %s does not exist", root)
	}

	var repos []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree, skip it.
			return fs.SkipDir
		}
		if d.IsDir() && d.Name() == ".git" {
			repos = append(repos, filepath.Dir(path))
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return repos, nil
}

// CommitsForDay returns the commits authored by author in repo on the given
// day (YYYY-MM-DD). Shells out to: git log --all --author=<author>
func CommitsForDay(repo, author, day string) ([]Commit, error) {
	cmd := exec.Command("git", "-C", repo, "log", "--all",
		"--author="+author,
		"--since="+day+" 00:00:00",
		"--until="+day+" 23:59:59",
		"--pretty=format:%h - %an, %ar : %s")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git log in %s: %s: %w", repo, strings.TrimSpace(string(out)), err)
	}

	return ParseLog(string(out), day), nil
}

// ParseLog extracts commits from git log --pretty output. The subject is the
// text after the last ": " separator of each line; lines without one are
// ignored.
func ParseLog(out, day string) []Commit {
	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		idx := strings.LastIndex(line, " : ")
		if idx < 0 {
			continue
		}
		title := strings.TrimSpace(line[idx+3:])
		if title == "" {
			continue
		}
		commits = append(commits, Commit{Title: title, Date: day, Hours: defaultHoursPerCommit})
	}
	return commits
}

// WriteCSV writes the header and one row per commit.
func WriteCSV(w io.Writer, commits []Commit) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"title", "date", "log_hour"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, c := range commits {
		row := []string{c.Title, c.Date, formatHours(c.Hours)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatHours(hours float64) string {
	return fmt.Sprintf("%.1f", hours)
}

// FileName is the conventional export name for a user and day.
func FileName(username, day string) string {
	return fmt.Sprintf("git_commits_%s_%s.csv", username, day)
}
