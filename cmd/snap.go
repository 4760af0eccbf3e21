// ABOUTME: Snap command for the tracsis CLI
// ABOUTME: Captures a headless-browser screenshot of a task's web page

package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/apsissolutions/tracsis-cli/internal/debuglog"
	"github.com/apsissolutions/tracsis-cli/internal/snapshot"
)

var snapCmd = &cobra.Command{
	Use:   "snap <task_id>",
	Short: "Screenshot a task's web page",
	Long: `Open the Tracsis web UI in a headless browser, sign in with the stored
credentials and save a screenshot of the task's table to ./snaps.

This command talks to the web UI directly; it does not use the API session.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: task_id must be a number, got %q\n", args[0])
			os.Exit(1)
		}

		if exitCode := runSnap(os.Stdout, taskID); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(snapCmd)
}

// runSnap validates the credential store and delegates to the snapshot
// collaborator.
func runSnap(w io.Writer, taskID int) int {
	cfg, code := loadStore(w)
	if code != 0 {
		return code
	}

	fmt.Fprintln(w, "Taking screenshot...")
	path, err := snapshot.Capture(cfg.Credentials.User, cfg.Credentials.Password, taskID, snapshot.Options{
		WebURL: GetWebURL(),
		Debugf: debuglog.Log,
	})
	if err != nil {
		fmt.Fprintf(w, "Error during screenshot process: %v\n", err)
		return 1
	}

	fmt.Fprintf(w, "Screenshot saved as: %s\n", path)
	return 0
}
