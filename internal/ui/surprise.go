package ui

import (
	"greetcard/internal/card"
	"greetcard/internal/effects"
	"greetcard/internal/photo"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ClosingText is shown under the revealed image.
const ClosingText = "Hope you have the best day ever! 🎉"

// SurpriseView is the last screen: a gift that opens once into the photo.
// It never asks to advance.
type SurpriseView struct {
	stage
	session   card.Session
	assetsDir string
	opened    bool
	picture   *photo.Picture
}

var _ View = (*SurpriseView)(nil)

// NewSurpriseView creates the final screen with the gift closed.
func NewSurpriseView(env screenEnv) *SurpriseView {
	return &SurpriseView{
		stage:     env.stage(effects.NewEntrance(3, effects.Gentle), nil),
		session:   env.session,
		assetsDir: env.assetsDir,
	}
}

// Opened reports whether the gift has been opened.
func (v *SurpriseView) Opened() bool { return v.opened }

// Picture returns the loaded image, or nil before the gift is opened.
func (v *SurpriseView) Picture() *photo.Picture { return v.picture }

// Interactive implements interactive; only the closed gift reacts.
func (v *SurpriseView) Interactive() bool { return !v.opened }

// Init implements View.
func (v *SurpriseView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *SurpriseView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize(msg)
	case frameMsg:
		v.stepEffects()
	default:
		if isPress(msg, v.keys) {
			return v, v.open()
		}
	}
	return v, nil
}

// open flips the gift exactly once, loads the picture and starts the
// celebration. Later calls return nil.
func (v *SurpriseView) open() tea.Cmd {
	if v.opened {
		return nil
	}
	v.opened = true

	w, h := v.canvas()
	pic := photo.Load(v.session.ImageRef, v.assetsDir, min(w-4, 48), max(4, h-8))
	v.picture = &pic

	v.entrance = effects.NewEntrance(6, effects.Bouncy)
	v.confetti = effects.NewConfetti(120, false, v.token+1)
	v.confetti.Resize(w, h)

	token := v.token
	return func() tea.Msg { return GiftOpenedMsg{Token: token} }
}

// View implements View.
func (v *SurpriseView) View() string {
	if !v.opened {
		gift := lipgloss.JoinVertical(lipgloss.Center,
			Styles.Gift.Render("🎁"),
			Styles.Hint.Render("press enter or click to open"),
		)
		return v.render(gift)
	}
	content := lipgloss.JoinVertical(lipgloss.Center,
		v.picture.Rendered,
		Styles.Closing.Render(ClosingText),
	)
	return v.render(content)
}
