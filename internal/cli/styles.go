package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/agenda/internal/planner"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

func renderEvent(ev planner.Event) string {
	line := fmt.Sprintf("ID: %d  %s  %s %s", ev.ID, ev.Name, ev.Date, ev.Time)
	if ev.Location != "" {
		line += dimStyle.Render("  @" + ev.Location)
	}
	if ev.Reminder {
		line += dimStyle.Render("  [reminder]")
	}
	return line
}

func renderTask(task planner.Task) string {
	if task.Done {
		return doneStyle.Render("[x] " + task.Text)
	}
	return "[ ] " + task.Text
}

func renderError(err error) string {
	return errorStyle.Render("Error: " + err.Error())
}
