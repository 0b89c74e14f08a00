package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Cyclone1070/renban/internal/orchestrator"
)

// Styles colour the summary line.
type Styles struct {
	Renamed lipgloss.Style
	Planned lipgloss.Style
	Neutral lipgloss.Style
	Failed  lipgloss.Style
	Notice  lipgloss.Style
}

// NewStyles returns the default palette, or plain styles when noColor is set.
func NewStyles(noColor bool) Styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return Styles{Renamed: plain, Planned: plain, Neutral: plain, Failed: plain, Notice: plain}
	}
	return Styles{
		Renamed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Planned: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Neutral: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// Summary returns the counts of r on one line, followed by any notices.
func Summary(r *orchestrator.Report, s Styles) string {
	c := r.Counts()

	var parts []string
	if r.DryRun {
		parts = append(parts, s.Planned.Render(fmt.Sprintf("%d to rename", c.Planned)))
	} else {
		parts = append(parts, s.Renamed.Render(fmt.Sprintf("%d renamed", c.Renamed)))
	}
	parts = append(parts, s.Neutral.Render(fmt.Sprintf("%d unchanged", c.Unchanged)))
	if c.Failed > 0 {
		parts = append(parts, s.Failed.Render(fmt.Sprintf("%d failed", c.Failed)))
	}

	lines := []string{strings.Join(parts, ", ")}
	for _, n := range r.Notices {
		lines = append(lines, s.Notice.Render("! "+n))
	}
	if r.Interrupted {
		lines = append(lines, s.Failed.Render("interrupted before every file was handled"))
	}
	return strings.Join(lines, "\n")
}
