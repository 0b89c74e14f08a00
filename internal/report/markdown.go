// Package report turns orchestrator reports into text for the terminal: a
// markdown table for the preview and a styled one-line summary.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/renban/internal/model"
	"github.com/Cyclone1070/renban/internal/orchestrator"
)

var cellEscaper = strings.NewReplacer("|", `\|`, "`", "\\`", "\n", " ")

// Markdown renders the outcomes as a markdown table followed by notices
// and failures.
func Markdown(r *orchestrator.Report) string {
	var sb strings.Builder

	title := "Rename results"
	if r.DryRun {
		title = "Rename preview"
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "Mode **%s** in `%s`\n\n", r.Strategy, r.Root)

	for _, n := range r.Notices {
		fmt.Fprintf(&sb, "> %s\n\n", n)
	}

	if len(r.Outcomes) == 0 {
		sb.WriteString("No matching files.\n")
		return sb.String()
	}

	sb.WriteString("| # | Current | New | Status |\n")
	sb.WriteString("|---|---|---|---|\n")
	for i, o := range r.Outcomes {
		newName := o.NewName
		if o.Failed() {
			newName = "-"
		}
		fmt.Fprintf(&sb, "| %d | %s | %s | %s |\n",
			i+1, cell(relative(r.Root, o.Source)), cell(newName), statusLabel(o.Status, r.DryRun))
	}

	if failures := r.Failures(); len(failures) > 0 {
		sb.WriteString("\n## Failures\n\n")
		for _, o := range failures {
			fmt.Fprintf(&sb, "- %s: %s\n", cell(relative(r.Root, o.Source)), cell(errorText(o.Err)))
		}
	}

	if r.Interrupted {
		fmt.Fprintf(&sb, "\nInterrupted after %d files.\n", len(r.Outcomes))
	}
	return sb.String()
}

func statusLabel(s model.Status, dryRun bool) string {
	if s == model.StatusPlanned && dryRun {
		return "will rename"
	}
	return s.String()
}

func relative(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}

func cell(s string) string {
	return cellEscaper.Replace(s)
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
