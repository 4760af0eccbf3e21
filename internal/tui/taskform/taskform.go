// ABOUTME: Interactive create-task form built on huh
// ABOUTME: Collects project, title, delivery date and estimated hours with validation

package taskform

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/apsissolutions/tracsis-cli/internal/client"
	"github.com/apsissolutions/tracsis-cli/internal/tui/styles"
)

// Input is the validated outcome of a completed form.
type Input struct {
	ProjectID     int
	Title         string
	DeliveryDate  string
	EstimatedHour float64
}

// Form wraps a huh form over the user's project list.
type Form struct {
	form *huh.Form

	projectID int
	title     string
	date      string
	hours     string
}

// createTheme trims the base theme to the pager palette.
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Label).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Danger).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Danger)
	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Separator).
		SetString("> ")
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Label).
		Bold(true)

	t.Blurred = t.Focused
	t.Blurred.Title = lipgloss.NewStyle().Foreground(styles.Muted)

	return t
}

// New builds a form offering the given projects.
func New(projects []client.Project) *Form {
	f := &Form{}

	options := make([]huh.Option[int], len(projects))
	for i, p := range projects {
		options[i] = huh.NewOption(fmt.Sprintf("%s (ID: %d)", p.Name, p.ID), p.ID)
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Project").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(options...).
				Value(&f.projectID),
			huh.NewInput().
				Title("Task title").
				Value(&f.title).
				Validate(validateNonEmpty),
			huh.NewInput().
				Title("Delivery date").
				Placeholder("YYYY-MM-DD").
				Value(&f.date).
				Validate(ValidateDate),
			huh.NewInput().
				Title("Estimated hours").
				Placeholder("e.g., 8").
				Value(&f.hours).
				Validate(ValidateHours),
		).Title("Create Task"),
	).WithTheme(createTheme())

	return f
}

// Run blocks until the form is submitted or cancelled.
func (f *Form) Run() (*Input, error) {
	if err := f.form.Run(); err != nil {
		return nil, err
	}
	hours, err := strconv.ParseFloat(f.hours, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing hours: %w", err)
	}
	return &Input{
		ProjectID:     f.projectID,
		Title:         f.title,
		DeliveryDate:  f.date,
		EstimatedHour: hours,
	}, nil
}

func validateNonEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("must not be empty")
	}
	return nil
}

// ValidateDate accepts YYYY-MM-DD only.
func ValidateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("must be a date in YYYY-MM-DD format")
	}
	return nil
}

// ValidateHours accepts a positive float.
func ValidateHours(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}
