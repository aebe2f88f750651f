package ui

import (
	"strconv"
	"strings"

	"greetcard/internal/card"
	"greetcard/internal/effects"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CountdownView counts down once per Tick and, FinalDelay after reaching
// zero, asks for the next step exactly once. Its timers stop when the view
// is closed.
type CountdownView struct {
	stage
	timing card.Timing
	value  int
	fired  bool
}

var _ View = (*CountdownView)(nil)

// NewCountdownView creates the countdown screen.
func NewCountdownView(env screenEnv) *CountdownView {
	return &CountdownView{
		stage:  env.stage(effects.NewEntrance(3, effects.Bouncy), nil),
		timing: env.timing,
		value:  env.timing.CountdownFrom,
	}
}

// Value is the number currently shown; 0 means the cake is shown.
func (v *CountdownView) Value() int { return v.value }

// Fired reports whether the advance request has been sent.
func (v *CountdownView) Fired() bool { return v.fired }

// Interactive implements interactive; the countdown ignores keys.
func (v *CountdownView) Interactive() bool { return false }

// Init starts the first timer.
func (v *CountdownView) Init() tea.Cmd {
	return v.schedule()
}

func (v *CountdownView) schedule() tea.Cmd {
	if v.value > 0 {
		return v.sched.after(v.timing.Tick, countdownTickMsg{token: v.token})
	}
	return v.sched.after(v.timing.FinalDelay, countdownDoneMsg{token: v.token})
}

// Update implements View.
func (v *CountdownView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize(msg)
	case frameMsg:
		v.stepEffects()
	case countdownTickMsg:
		if msg.token != v.token || v.value <= 0 || v.sched.stopped() {
			return v, nil
		}
		v.value--
		v.entrance = effects.NewEntrance(2, effects.Bouncy)
		return v, v.schedule()
	case countdownDoneMsg:
		if msg.token != v.token || v.fired || v.sched.stopped() {
			return v, nil
		}
		v.fired = true
		return v, v.advance()
	}
	return v, nil
}

// View implements View.
func (v *CountdownView) View() string {
	var shown string
	if v.value > 0 {
		shown = Styles.Digit.Render(bigNumber(v.value))
	} else {
		shown = "🎂"
	}
	content := lipgloss.JoinVertical(lipgloss.Center,
		Styles.Title.Render("Your Special Day is Here!"),
		"",
		shown,
	)
	return v.render(content)
}

var bigDigits = [10][5]string{
	{"█████", "█   █", "█   █", "█   █", "█████"},
	{"  █  ", " ██  ", "  █  ", "  █  ", " ███ "},
	{"█████", "    █", "█████", "█    ", "█████"},
	{"█████", "    █", " ████", "    █", "█████"},
	{"█   █", "█   █", "█████", "    █", "    █"},
	{"█████", "█    ", "█████", "    █", "█████"},
	{"█████", "█    ", "█████", "█   █", "█████"},
	{"█████", "    █", "   █ ", "  █  ", "  █  "},
	{"█████", "█   █", "█████", "█   █", "█████"},
	{"█████", "█   █", "█████", "    █", "█████"},
}

// bigNumber renders a non-negative integer in five-row block digits.
func bigNumber(n int) string {
	digits := strconv.Itoa(n)
	rows := make([]string, 5)
	for i := range rows {
		parts := make([]string, 0, len(digits))
		for _, d := range digits {
			parts = append(parts, bigDigits[d-'0'][i])
		}
		rows[i] = strings.Join(parts, " ")
	}
	return strings.Join(rows, "\n")
}
