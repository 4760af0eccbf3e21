// ABOUTME: Task pager bubbletea model
// ABOUTME: Shows one task per screen; any key advances, q quits early

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/apsissolutions/tracsis-cli/internal/client"
	"github.com/apsissolutions/tracsis-cli/internal/tui/styles"
)

const cardWidth = 80

// pagerKeys are the bindings that do something other than advance.
type pagerKeys struct {
	Quit key.Binding
}

var defaultPagerKeys = pagerKeys{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// Pager walks a task list one card per screen.
type Pager struct {
	tasks []client.Task
	index int
	keys  pagerKeys
}

// NewPager creates a pager over tasks.
func NewPager(tasks []client.Task) Pager {
	return Pager{tasks: tasks, keys: defaultPagerKeys}
}

// Init implements tea.Model
func (p Pager) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Quit keys exit early; every other key advances
// to the next task, quitting after the last one.
func (p Pager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if key.Matches(keyMsg, p.keys.Quit) {
		return p, tea.Quit
	}

	p.index++
	if p.index >= len(p.tasks) {
		return p, tea.Quit
	}
	return p, nil
}

// View implements tea.Model
func (p Pager) View() string {
	if len(p.tasks) == 0 || p.index >= len(p.tasks) {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderTaskCard(p.tasks[p.index]))
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render(fmt.Sprintf(
		"task %d of %d · press any key to continue, q to quit",
		p.index+1, len(p.tasks),
	)))
	sb.WriteString("\n")
	return sb.String()
}

// RenderTaskCard formats one task between yellow rules with cyan labels. It
// is shared by the pager view and the non-TTY plain listing.
func RenderTaskCard(t client.Task) string {
	rule := styles.Rule.Render(strings.Repeat("=", cardWidth))

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			styles.FieldLabel.Render(label+": "),
			styles.FieldValue.Render(value),
		)
	}

	lines := []string{
		rule,
		row("Task ID", fmt.Sprintf("%d", t.ID)),
		row("Title", t.Title),
		row("Project", t.ProjectName),
		row("Delivery Date", t.DeliveryDate),
		row("Estimated Hours", t.EstimatedHour.String()),
		row("Task Type", t.ModuleName),
		rule,
	}
	return strings.Join(lines, "\n")
}

// RunPager displays tasks interactively. Callers should only use this when
// stdout is a terminal; the alt screen replaces the old clear-and-reprint
// behavior.
func RunPager(tasks []client.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	program := tea.NewProgram(NewPager(tasks), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
