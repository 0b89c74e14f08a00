package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m ConfirmModel, msg tea.Msg) (ConfirmModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	cm, ok := next.(ConfirmModel)
	require.True(t, ok)
	return cm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// --- HAPPY PATH TESTS ---

func TestUpdate_Enter_ConfirmsAndQuits(t *testing.T) {
	m, cmd := press(t, NewConfirmModel("preview", "Apply?", DefaultStyles(true)), tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Answered())
	assert.True(t, m.Confirmed())
	assert.True(t, isQuit(cmd))
}

func TestUpdate_YesAndNoKeys(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Y'}}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, false},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, false},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			m, cmd := press(t, NewConfirmModel("preview", "Apply?", DefaultStyles(true)), tt.key)

			assert.True(t, m.Answered())
			assert.Equal(t, tt.want, m.Confirmed())
			assert.True(t, isQuit(cmd))
		})
	}
}

func TestUpdate_OtherKey_KeepsWaiting(t *testing.T) {
	m, cmd := press(t, NewConfirmModel("preview", "Apply?", DefaultStyles(true)), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.False(t, m.Answered())
	assert.False(t, isQuit(cmd))
}

func TestUpdate_WindowSize_FitsViewport(t *testing.T) {
	preview := strings.Repeat("line\n", 50)

	m, _ := press(t, NewConfirmModel(preview, "Apply?", DefaultStyles(true)), tea.WindowSizeMsg{Width: 100, Height: 12})

	assert.Equal(t, 100, m.viewport.Width)
	assert.Equal(t, 10, m.viewport.Height)
	assert.Contains(t, m.View(), "scroll")
}

func TestUpdate_ShortPreview_ViewportShrinks(t *testing.T) {
	m, _ := press(t, NewConfirmModel("a\nb\n", "Apply?", DefaultStyles(true)), tea.WindowSizeMsg{Width: 80, Height: 40})

	assert.Equal(t, 2, m.viewport.Height)
	assert.NotContains(t, m.View(), "scroll")
}

func TestView_ShowsQuestionThenAnswer(t *testing.T) {
	m := NewConfirmModel("a.txt -> 001.txt", "Apply these renames?", DefaultStyles(true))

	assert.Contains(t, m.View(), "a.txt -> 001.txt")
	assert.Contains(t, m.View(), "Apply these renames? [Y/n]")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.Contains(t, m.View(), "Apply these renames? No")
}
