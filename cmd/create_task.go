// ABOUTME: Create-task command for the tracsis CLI
// ABOUTME: Collects project, title, date and hours, then creates the task

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/apsissolutions/tracsis-cli/internal/client"
	"github.com/apsissolutions/tracsis-cli/internal/prompt"
	"github.com/apsissolutions/tracsis-cli/internal/tui/taskform"
)

var createTaskCmd = &cobra.Command{
	Use:   "create-task",
	Short: "Create a new task",
	Long:  `Create a task under one of your projects, assigned to your profile user.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runCreateTask(ctx, os.Stdout, prompt.NewTerminal()); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(createTaskCmd)
}

// runCreateTask fetches the project list, gathers the task fields and submits
// the creation request.
func runCreateTask(ctx context.Context, w io.Writer, p prompt.Prompter) int {
	cfg, code := loadStore(w)
	if code != 0 {
		return code
	}

	api := newAPIClient()
	if code := ensureAuthenticated(ctx, w, api, cfg); code != 0 {
		return code
	}

	res := api.GetMyProjectList(ctx)
	if res.Error {
		fmt.Fprintln(w, "Error fetching projects:")
		printResult(w, res)
		return 1
	}

	var grid client.ProjectGrid
	if err := res.DecodeData(&grid); err != nil {
		fmt.Fprintf(w, "Error decoding projects: %v\n", err)
		return 1
	}
	if len(grid.Items) == 0 {
		fmt.Fprintln(w, "No projects available.")
		return 1
	}

	input, code := collectTaskInput(w, p, grid.Items)
	if code != 0 {
		return code
	}

	res = api.CreateTask(ctx, input.Title, cfg.ProfileData.UserID, input.DeliveryDate, input.EstimatedHour, input.ProjectID)
	if res.Error {
		fmt.Fprintln(w, "Error creating task:")
		printResult(w, res)
		return 1
	}

	fmt.Fprintln(w, "\n✓ Task created successfully!")
	printResult(w, res)
	return 0
}

// collectTaskInput gathers the create-task fields. On a terminal the huh form
// handles selection and field validation; otherwise the prompter flow is
// used: project selection is fatal on bad input, while date and hours
// re-prompt until they parse.
func collectTaskInput(w io.Writer, p prompt.Prompter, projects []client.Project) (*taskform.Input, int) {
	if isTerminal(w) {
		input, err := taskform.New(projects).Run()
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return nil, 1
		}
		return input, 0
	}

	fmt.Fprintln(w, "Available Projects:")
	for i, project := range projects {
		fmt.Fprintf(w, "%d. %s (ID: %d)\n", i+1, project.Name, project.ID)
	}

	selected, err := p.Line("Select project (number):", "")
	if err != nil {
		fmt.Fprintf(w, "Error reading input: %v\n", err)
		return nil, 1
	}
	idx, err := strconv.Atoi(selected)
	if err != nil || idx < 1 || idx > len(projects) {
		fmt.Fprintln(w, "Invalid selection")
		return nil, 1
	}
	projectID := projects[idx-1].ID

	title, err := p.Line("Task title:", "")
	if err != nil {
		fmt.Fprintf(w, "Error reading input: %v\n", err)
		return nil, 1
	}

	var date string
	for {
		date, err = p.Line("Delivery date (YYYY-MM-DD):", "")
		if err != nil {
			fmt.Fprintf(w, "Error reading input: %v\n", err)
			return nil, 1
		}
		if taskform.ValidateDate(date) == nil {
			break
		}
		fmt.Fprintln(w, "Invalid date format. Please use YYYY-MM-DD")
	}

	var hours float64
	for {
		hoursStr, err := p.Line("Estimated hours:", "")
		if err != nil {
			fmt.Fprintf(w, "Error reading input: %v\n", err)
			return nil, 1
		}
		if taskform.ValidateHours(hoursStr) == nil {
			hours, _ = strconv.ParseFloat(hoursStr, 64)
			break
		}
		fmt.Fprintln(w, "Invalid hours. Please enter a positive number")
	}

	return &taskform.Input{
		ProjectID:     projectID,
		Title:         title,
		DeliveryDate:  date,
		EstimatedHour: hours,
	}, 0
}
