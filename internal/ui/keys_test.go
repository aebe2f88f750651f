package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

// keyMsg builds a tea.KeyMsg the way Bubble Tea reports it.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func leftClick() tea.MouseMsg {
	return tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestIsPress(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.Msg
		want bool
	}{
		{"enter", keyMsg("enter"), true},
		{"space", keyMsg(" "), true},
		{"left click", leftClick(), true},
		{"letter", keyMsg("x"), false},
		{"release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false},
		{"right click", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false},
		{"window size", tea.WindowSizeMsg{Width: 10, Height: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isPress(tt.msg, keys))
		})
	}
}

func TestKeyMap_Help(t *testing.T) {
	keys := DefaultKeyMap()
	h := newHelp()

	out := h.View(keys)
	assert.Contains(t, out, "continue")
	assert.Contains(t, out, "quit")

	keys.Next.SetEnabled(false)
	out = h.View(keys)
	assert.NotContains(t, out, "continue")
	assert.Contains(t, out, "quit")
}
