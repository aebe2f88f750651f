package ui

import (
	"context"
	"time"

	"greetcard/internal/card"
	"greetcard/internal/clock"
	"greetcard/internal/effects"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// AppConfig wires the root model. Zero values get defaults.
type AppConfig struct {
	Session   card.Session
	Policy    card.OverflowPolicy
	Timing    card.Timing
	AssetsDir string
	Clock     clock.Clock
	Observer  card.Observer
	Logger    *zap.Logger
}

// AppModel is the root model. It owns the step controller and the current
// screen, and is the only place that advances the controller.
type AppModel struct {
	Controller *card.Controller
	Session    card.Session
	Keys       KeyMap

	timing    card.Timing
	assetsDir string
	clock     clock.Clock
	observer  card.Observer
	log       *zap.Logger
	help      help.Model

	ctx     context.Context
	cancel  context.CancelFunc
	frames  *scheduler
	framing bool

	current View
	token   uint64
	width   int
	height  int
	started bool
	ended   bool
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model positioned on the first screen.
func NewAppModel(cfg AppConfig) *AppModel {
	if cfg.Clock == nil {
		cfg.Clock = clock.Real()
	}
	if cfg.Observer == nil {
		cfg.Observer = card.NoopObserver{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Timing == (card.Timing{}) {
		cfg.Timing = card.DefaultTiming()
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &AppModel{
		Controller: card.NewController(cfg.Policy, cfg.Observer),
		Session:    cfg.Session,
		Keys:       DefaultKeyMap(),
		timing:     cfg.Timing,
		assetsDir:  cfg.AssetsDir,
		clock:      cfg.Clock,
		observer:   cfg.Observer,
		log:        cfg.Logger.With(zap.String("session", cfg.Session.ID)),
		help:       newHelp(),
		ctx:        ctx,
		cancel:     cancel,
	}
	m.frames = newScheduler(ctx, m.clock)
	m.current = m.build(m.Controller.Screen())
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Current returns the view on screen.
func (m *AppModel) Current() View {
	return m.current
}

// Close tears down the current view and every pending timer, and ends the
// session. Safe to call more than once.
func (m *AppModel) Close() {
	if m.ended {
		return
	}
	m.ended = true
	if c, ok := m.current.(Closer); ok {
		c.Close()
	}
	m.frames.stop()
	m.cancel()
	if m.started {
		m.observer.OnSessionEnd()
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if !a.started {
		a.started = true
		a.observer.OnSessionStart(a.Session)
	}
	return tea.Batch(a.current.Init(), a.ensureFrames())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.ended {
		return a, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.Keys.Quit) {
			a.Close()
			return a, tea.Quit
		}
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
	case AdvanceMsg:
		if msg.Token != a.token {
			a.log.Debug("dropping stale advance", zap.Uint64("token", msg.Token), zap.Uint64("current", a.token))
			return a, nil
		}
		return a, a.advance()
	case GiftOpenedMsg:
		if msg.Token == a.token {
			a.observer.OnGiftOpened()
		}
		return a, nil
	case frameMsg:
		a.framing = false
	}

	v, cmd := a.current.Update(msg)
	a.current = v
	return a, tea.Batch(cmd, a.ensureFrames())
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	keys := a.Keys
	if i, ok := a.current.(interactive); ok && !i.Interactive() {
		keys.Next.SetEnabled(false)
	}
	helpLine := lipgloss.NewStyle().PaddingLeft(1).Render(a.help.View(keys))
	return a.current.View() + "\n\n" + helpLine
}

// advance moves the controller on and swaps in the new screen. When the
// overflow policy maps the new counter to the screen already shown, the
// view is kept as is.
func (m *AppModel) advance() tea.Cmd {
	from := m.Controller.Screen()
	to := m.Controller.Advance()
	if to == from {
		return nil
	}

	if c, ok := m.current.(Closer); ok {
		c.Close()
	}
	m.current = m.build(to)
	m.framing = false
	m.frames.stop()
	m.frames = newScheduler(m.ctx, m.clock)
	return tea.Batch(m.current.Init(), m.ensureFrames())
}

// build constructs the view for s with a fresh token and scheduler.
func (m *AppModel) build(s card.Step) View {
	m.token++
	return newScreen(s, screenEnv{
		token:     m.token,
		sched:     newScheduler(m.ctx, m.clock),
		keys:      m.Keys,
		session:   m.Session,
		timing:    m.timing,
		assetsDir: m.assetsDir,
		width:     m.width,
		height:    m.height,
	})
}

// ensureFrames starts the frame ticker if the current view has something to
// animate and no tick is pending.
func (m *AppModel) ensureFrames() tea.Cmd {
	if m.framing || m.ended {
		return nil
	}
	if a, ok := m.current.(animator); !ok || !a.Animating() {
		return nil
	}
	m.framing = true
	return m.frames.after(time.Second/effects.FPS, frameMsg{})
}
