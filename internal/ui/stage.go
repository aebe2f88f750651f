package ui

import (
	"strings"

	"greetcard/internal/effects"

	tea "github.com/charmbracelet/bubbletea"
)

// Canvas size used before the first WindowSizeMsg (and in tests).
const (
	defaultWidth  = 80
	defaultHeight = 24
	helpHeight    = 2
)

// stage is the shared plumbing of every screen: its token, its timers, the
// window size and the decorative effects.
type stage struct {
	token    uint64
	sched    *scheduler
	keys     KeyMap
	width    int
	height   int
	entrance *effects.Entrance
	confetti *effects.Confetti
}

func (s *stage) resize(msg tea.WindowSizeMsg) {
	s.width, s.height = msg.Width, msg.Height
	s.confetti.Resize(s.canvas())
}

// canvas is the area available to the screen, excluding the help line.
func (s *stage) canvas() (int, int) {
	w, h := s.width, s.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, max(1, h-helpHeight)
}

func (s *stage) stepEffects() {
	s.confetti.Resize(s.canvas())
	s.entrance.Step()
	s.confetti.Step()
}

// Animating implements animator.
func (s *stage) Animating() bool {
	return !s.entrance.Settled() || s.confetti.Active()
}

// Close implements Closer.
func (s *stage) Close() {
	s.sched.stop()
}

// advance returns the command that asks the app for the next step.
func (s *stage) advance() tea.Cmd {
	token := s.token
	return func() tea.Msg { return AdvanceMsg{Token: token} }
}

// render places content on the canvas, shifted down by the entrance
// offset, with confetti around it.
func (s *stage) render(content string) string {
	w, h := s.canvas()
	if off := s.entrance.Offset(); off > 0 {
		content = strings.Repeat("\n", off) + content
	}
	s.confetti.Resize(w, h)
	return s.confetti.Compose(content, w, h)
}
