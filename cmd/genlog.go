// ABOUTME: Genlog command for the tracsis CLI
// ABOUTME: Exports today's git commits across a directory tree to CSV

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/apsissolutions/tracsis-cli/internal/gitlog"
)

var genlogPath string

var genlogCmd = &cobra.Command{
	Use:   "genlog <username>",
	Short: "Export today's git commits to CSV",
	Long: `Scan a directory tree for git repositories and export today's commits by
the given author to git_commits_<username>_<date>.csv, one hour per commit.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if exitCode := runGenlog(os.Stdout, args[0], genlogPath); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(genlogCmd)
	genlogCmd.Flags().StringVar(&genlogPath, "path", ".", "Directory tree to scan for git repositories")
}

// runGenlog scans for repositories and writes the commit CSV. Repositories
// that cannot be read are skipped with a warning instead of aborting the
// whole export.
func runGenlog(w io.Writer, username, root string) int {
	if _, code := loadStore(w); code != 0 {
		return code
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	day := time.Now().Format("2006-01-02")
	fmt.Fprintf(w, "Fetching git commits for user %s in %s on %s...\n", username, absRoot, day)

	repos, err := gitlog.FindRepos(absRoot)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}
	if len(repos) == 0 {
		fmt.Fprintf(w, "No git repositories found in %s\n", absRoot)
		return 0
	}

	var commits []gitlog.Commit
	for _, repo := range repos {
		repoCommits, err := gitlog.CommitsForDay(repo, username, day)
		if err != nil {
			fmt.Fprintf(w, "Warning: could not read repository at %s: %v\n", repo, err)
			continue
		}
		if len(repoCommits) == 0 {
			continue
		}
		fmt.Fprintf(w, "\nCommits in %s:\n", repo)
		for _, c := range repoCommits {
			fmt.Fprintf(w, "  %s\n", c.Title)
		}
		commits = append(commits, repoCommits...)
	}

	fileName := gitlog.FileName(username, day)
	f, err := os.Create(fileName)
	if err != nil {
		fmt.Fprintf(w, "Error creating CSV file: %v\n", err)
		return 1
	}
	defer f.Close()

	if err := gitlog.WriteCSV(f, commits); err != nil {
		fmt.Fprintf(w, "Error writing CSV file: %v\n", err)
		return 1
	}

	fmt.Fprintf(w, "\nCSV file generated: %s\n", fileName)
	return 0
}
