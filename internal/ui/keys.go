package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap implements help.KeyMap for the card's two actions.
type KeyMap struct {
	Next key.Binding
	Quit key.Binding
}

var _ help.KeyMap = KeyMap{}

// DefaultKeyMap binds continue to Enter/Space and quit to q/ctrl+c.
// Bubble Tea reports space as " ".
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space/click", "continue"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Quit}
}

// FullHelp returns a single column with the short help bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// isPress reports whether msg is a "button press": the continue key or a
// left mouse click anywhere on the card.
func isPress(msg tea.Msg, keys KeyMap) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return key.Matches(msg, keys.Next)
	case tea.MouseMsg:
		return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	}
	return false
}

// newHelp returns a help model styled like the rest of the card.
func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	return h
}
