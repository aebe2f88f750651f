package ui

import (
	"greetcard/internal/card"
	"greetcard/internal/effects"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxCardWidth caps the message card's text width.
const maxCardWidth = 60

// MessageView shows the personal message in a card that slides up.
type MessageView struct {
	stage
	session   card.Session
	requested bool
}

var _ View = (*MessageView)(nil)

// NewMessageView creates the message screen.
func NewMessageView(env screenEnv) *MessageView {
	return &MessageView{
		stage:   env.stage(effects.NewEntrance(10, effects.Gentle), nil),
		session: env.session,
	}
}

// Init implements View.
func (v *MessageView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *MessageView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize(msg)
	case frameMsg:
		v.stepEffects()
	default:
		if isPress(msg, v.keys) && !v.requested {
			v.requested = true
			return v, v.advance()
		}
	}
	return v, nil
}

// View implements View. Line breaks in the message are kept; long lines
// wrap at the card width.
func (v *MessageView) View() string {
	w, _ := v.canvas()
	textW := min(maxCardWidth, max(10, w-10))
	body := Styles.Body.Width(textW).Align(lipgloss.Center).Render(v.session.Letter())
	box := Styles.Card.Render(lipgloss.JoinVertical(lipgloss.Center,
		Styles.CardHead.Render("💌 A Message For You"),
		body,
		Styles.Button.Render("One Last Surprise... ✨"),
	))
	return v.render(box)
}
