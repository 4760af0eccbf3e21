// ABOUTME: Logs command for the tracsis CLI
// ABOUTME: Lists the work-log entries visible to the logged-in user

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	logsPage    int
	logsPerPage int
)

var logsCmd = &cobra.Command{
	Use:   "logs <task_id>",
	Short: "List work logs",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		taskID, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: task_id must be a number, got %q\n", args[0])
			os.Exit(1)
		}

		if exitCode := runLogs(ctx, os.Stdout, taskID); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().IntVar(&logsPage, "page", 1, "Page number")
	logsCmd.Flags().IntVar(&logsPerPage, "per-page", 10, "Entries per page")
}

// runLogs fetches the log listing and pretty-prints its items.
func runLogs(ctx context.Context, w io.Writer, taskID int) int {
	cfg, code := loadStore(w)
	if code != 0 {
		return code
	}

	api := newAPIClient()
	if code := ensureAuthenticated(ctx, w, api, cfg); code != 0 {
		return code
	}

	res := api.GetTaskLogs(ctx, taskID, logsPage, logsPerPage)
	if res.Error {
		fmt.Fprintln(w, "Error fetching task logs:")
		printResult(w, res)
		return 1
	}

	if IsJSONOutput() {
		printResult(w, res)
		return 0
	}

	var grid struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := res.DecodeData(&grid); err != nil {
		fmt.Fprintf(w, "Error decoding logs: %v\n", err)
		return 1
	}

	if len(grid.Items) == 0 {
		fmt.Fprintln(w, "No log entries found.")
		return 0
	}

	for _, item := range grid.Items {
		var pretty map[string]any
		if err := json.Unmarshal(item, &pretty); err != nil {
			continue
		}
		data, _ := json.MarshalIndent(pretty, "", "  ")
		fmt.Fprintln(w, string(data))
	}
	return 0
}
