package ui

import (
	"strings"

	"greetcard/internal/card"
	"greetcard/internal/effects"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var cakeArt = []string{
	"    |:|:|:|    ",
	"  __|_|_|_|__  ",
	" |~~~~~~~~~~~| ",
	" |  ~ ~ ~ ~  | ",
	"_|___________|_",
	"|~~~~~~~~~~~~~|",
	"|  ~  ~  ~  ~ |",
	"|_____________|",
}

var flameFrames = []string{"    ( ( (    ", "    ) ) )    "}

// CakeView shows the cake, a confetti burst and the birthday greeting.
type CakeView struct {
	stage
	session   card.Session
	frame     int
	requested bool
}

var _ View = (*CakeView)(nil)

// NewCakeView creates the cake screen.
func NewCakeView(env screenEnv) *CakeView {
	return &CakeView{
		stage:   env.stage(effects.NewEntrance(6, effects.Gentle), effects.NewConfetti(150, false, env.token)),
		session: env.session,
	}
}

// Init implements View.
func (v *CakeView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *CakeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize(msg)
	case frameMsg:
		v.frame++
		v.stepEffects()
	default:
		if isPress(msg, v.keys) && !v.requested {
			v.requested = true
			return v, v.advance()
		}
	}
	return v, nil
}

// Animating keeps the candles flickering after the confetti settles.
func (v *CakeView) Animating() bool { return true }

// View implements View.
func (v *CakeView) View() string {
	flame := flameFrames[(v.frame/(effects.FPS/3))%len(flameFrames)]
	cake := Styles.Flame.Render(" "+flame+" ") + "\n" + Styles.Cake.Render(strings.Join(cakeArt, "\n"))
	content := lipgloss.JoinVertical(lipgloss.Center,
		cake,
		"",
		Styles.Headline.Render(v.session.CakeGreeting()),
		Styles.Button.Render("Open Your Gift 💌"),
	)
	return v.render(content)
}
