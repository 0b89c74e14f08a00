// Package ui hosts the interactive confirmation shown between the dry-run
// preview and the apply pass.
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"gitlab.com/tozd/go/errors"
)

const (
	defaultWidth  = 80
	defaultHeight = 20
	footerHeight  = 2
)

// ErrUnexpectedModel is returned when the program ends with a foreign model.
var ErrUnexpectedModel = errors.Base("confirmation program returned an unexpected model")

// ConfirmModel shows a scrollable preview and a Yes/No question.
// Enter answers Yes.
type ConfirmModel struct {
	viewport  viewport.Model
	question  string
	lines     int
	styles    Styles
	answered  bool
	confirmed bool
}

// NewConfirmModel creates the model for an already rendered preview.
func NewConfirmModel(preview, question string, styles Styles) ConfirmModel {
	preview = strings.TrimRight(preview, "\n")
	lines := strings.Count(preview, "\n") + 1

	vp := viewport.New(defaultWidth, min(lines, defaultHeight))
	vp.SetContent(preview)

	return ConfirmModel{
		viewport: vp,
		question: question,
		lines:    lines,
		styles:   styles,
	}
}

// Init implements tea.Model.
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, min(m.lines, msg.Height-footerHeight))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "y", "Y":
			m.answered, m.confirmed = true, true
			return m, tea.Quit
		case "n", "N", "esc", "q", "ctrl+c":
			m.answered, m.confirmed = true, false
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ConfirmModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")

	if m.answered {
		answer := "No"
		if m.confirmed {
			answer = "Yes"
		}
		sb.WriteString(m.styles.Question.Render(m.question) + " " + m.styles.Answer.Render(answer) + "\n")
		return sb.String()
	}

	sb.WriteString(m.styles.Question.Render(m.question + " [Y/n]"))
	if m.lines > m.viewport.Height {
		sb.WriteString("  " + m.styles.Help.Render("↑/↓ scroll"))
	}
	return sb.String()
}

// Answered reports whether the user has answered.
func (m ConfirmModel) Answered() bool {
	return m.answered
}

// Confirmed reports whether the answer was Yes.
func (m ConfirmModel) Confirmed() bool {
	return m.confirmed
}

// Confirm runs the confirmation program until the user answers or ctx is
// cancelled. Cancellation counts as No.
func Confirm(ctx context.Context, preview, question string, styles Styles, opts ...tea.ProgramOption) (bool, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(NewConfirmModel(preview, question, styles), opts...)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return false, nil
		}
		return false, errors.Errorf("running confirmation: %w", err)
	}

	m, ok := final.(ConfirmModel)
	if !ok {
		return false, ErrUnexpectedModel
	}
	return m.Answered() && m.Confirmed(), nil
}
