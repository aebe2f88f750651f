package ui

import (
	"greetcard/internal/effects"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// IntroView is the first screen: a teaser over endless confetti.
type IntroView struct {
	stage
	requested bool
}

var _ View = (*IntroView)(nil)

// NewIntroView creates the intro screen.
func NewIntroView(env screenEnv) *IntroView {
	return &IntroView{
		stage: env.stage(effects.NewEntrance(4, effects.Gentle), effects.NewConfetti(60, true, env.token)),
	}
}

// Init implements View.
func (v *IntroView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *IntroView) Update(msg tea.Msg) (View, tea.Cmd) {
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

// View implements View.
func (v *IntroView) View() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		Styles.Title.Render("Something special is loading..."),
		Styles.Button.Render("Click to Begin 🎉"),
	)
	return v.render(content)
}
