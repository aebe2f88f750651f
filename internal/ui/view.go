package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View is one screen of the card.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Closer is implemented by views that own timers. Close is called when the
// view is replaced or the program exits.
type Closer interface {
	Close()
}

// animator is implemented by views with effects that need frame ticks.
type animator interface {
	Animating() bool
}

// interactive is implemented by views that currently react to the continue
// key. Views that do not implement it are assumed interactive.
type interactive interface {
	Interactive() bool
}
