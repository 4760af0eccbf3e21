// ABOUTME: Tasks command for the tracsis CLI
// ABOUTME: Lists assigned tasks, one per screen on a terminal

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/apsissolutions/tracsis-cli/internal/client"
	"github.com/apsissolutions/tracsis-cli/internal/tui"
)

var (
	tasksUserID  int
	tasksPage    int
	tasksPerPage int
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List your assigned tasks",
	Long: `Fetch the task list for a user and page through it.

On a terminal each task is shown on its own screen; any key advances and q
quits early. Piped output prints all tasks at once.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runTasks(ctx, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(tasksCmd)
	tasksCmd.Flags().IntVar(&tasksUserID, "user-id", 0, "User ID to list tasks for (default: profile user)")
	tasksCmd.Flags().IntVar(&tasksPage, "page", 1, "Page number")
	tasksCmd.Flags().IntVar(&tasksPerPage, "per-page", 10, "Tasks per page")
}

// runTasks executes the task listing and returns the exit code.
func runTasks(ctx context.Context, w io.Writer) int {
	cfg, code := loadStore(w)
	if code != 0 {
		return code
	}

	api := newAPIClient()
	if code := ensureAuthenticated(ctx, w, api, cfg); code != 0 {
		return code
	}

	userID := tasksUserID
	if userID == 0 {
		userID = cfg.ProfileData.UserID
	}

	res := api.GetTaskList(ctx, userID, tasksPage, tasksPerPage)
	if res.Error {
		fmt.Fprintln(w, "Error fetching tasks:")
		printResult(w, res)
		return 1
	}

	if IsJSONOutput() {
		printResult(w, res)
		return 0
	}

	var grid client.TaskGrid
	if err := res.DecodeData(&grid); err != nil {
		fmt.Fprintf(w, "Error decoding tasks: %v\n", err)
		return 1
	}

	if len(grid.Items) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return 0
	}

	if isTerminal(w) {
		if err := tui.RunPager(grid.Items); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	for _, task := range grid.Items {
		fmt.Fprintln(w, tui.RenderTaskCard(task))
		fmt.Fprintln(w)
	}
	return 0
}
