// ABOUTME: Log command for the tracsis CLI
// ABOUTME: Records one unit of work against a task

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/apsissolutions/tracsis-cli/internal/prompt"
)

// workTitleSuggestions are the completion hints offered for the work title.
var workTitleSuggestions = []string{
	"Development",
	"Code Review",
	"Testing",
	"Documentation",
	"Meeting",
}

var logCmd = &cobra.Command{
	Use:   "log <task_id> <i|c>",
	Short: "Log work against a task",
	Long: `Record one work entry for a task.

The second argument sets the task status: i leaves it in progress, c marks it
completed.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		taskID, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: task_id must be a number, got %q\n", args[0])
			os.Exit(1)
		}

		if exitCode := runLog(ctx, os.Stdout, prompt.NewTerminal(), taskID, args[1]); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
}

// runLog gathers a work entry interactively and submits it. A non-numeric or
// non-positive hours value is fatal on first entry; there is no retry here.
func runLog(ctx context.Context, w io.Writer, p prompt.Prompter, taskID int, status string) int {
	cfg, code := loadStore(w)
	if code != 0 {
		return code
	}

	api := newAPIClient()
	if code := ensureAuthenticated(ctx, w, api, cfg); code != 0 {
		return code
	}

	title, err := p.LineSuggest("title>", workTitleSuggestions)
	if err != nil {
		fmt.Fprintf(w, "Error reading input: %v\n", err)
		return 1
	}

	defaultDate := time.Now().Format("2006/01/02")
	date, err := p.Line("date>", defaultDate)
	if err != nil {
		fmt.Fprintf(w, "Error reading input: %v\n", err)
		return 1
	}

	hoursStr, err := p.Line("log_hour>", "")
	if err != nil {
		fmt.Fprintf(w, "Error reading input: %v\n", err)
		return 1
	}
	hours, err := strconv.ParseFloat(hoursStr, 64)
	if err != nil || hours <= 0 {
		fmt.Fprintf(w, "Error: log_hour must be a positive number, got %q\n", hoursStr)
		return 1
	}

	res := api.LogTaskWork(ctx, taskID, status, title, date, hours)
	if res.Error {
		fmt.Fprintln(w, "Error logging task work:")
		printResult(w, res)
		return 1
	}

	fmt.Fprintln(w, "\n✓ Work logged successfully!")
	return 0
}
