package ui

import (
	"strings"
	"sync"
	"testing"
	"time"

	"greetcard/internal/card"
	"greetcard/internal/clock/clocktest"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// harness drives an AppModel the way a tea.Program would: commands run on
// their own goroutines and their messages are fed back through Update on
// the test goroutine.
type harness struct {
	t     *testing.T
	app   *AppModel
	model tea.Model
	clock *clocktest.Fake
	msgs  chan tea.Msg
	wg    sync.WaitGroup
	quit  bool
}

func newHarness(t *testing.T, policy card.OverflowPolicy, obs card.Observer) *harness {
	t.Helper()
	clk := clocktest.New()
	app := NewAppModel(AppConfig{
		Session:   testSession(),
		Policy:    policy,
		AssetsDir: t.TempDir(),
		Clock:     clk,
		Observer:  obs,
	})
	h := &harness{
		t:     t,
		app:   app,
		model: app.AsTeaModel(),
		clock: clk,
		msgs:  make(chan tea.Msg, 256),
	}
	t.Cleanup(h.close)
	h.run(h.model.Init())
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	h.settle()
	return h
}

func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		if msg := cmd(); msg != nil {
			h.msgs <- msg
		}
	}()
}

func (h *harness) send(msg tea.Msg) {
	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
		return
	case tea.QuitMsg:
		h.quit = true
		return
	}
	_, cmd := h.model.Update(msg)
	h.run(cmd)
}

// settle processes messages until none arrive for a short while.
func (h *harness) settle() {
	for {
		select {
		case msg := <-h.msgs:
			h.send(msg)
		case <-time.After(30 * time.Millisecond):
			return
		}
	}
}

func (h *harness) press() {
	h.send(keyMsg("enter"))
	h.settle()
}

// elapse moves the fake clock forward in small slices so timers armed while
// handling one slice fire on a later one.
func (h *harness) elapse(d time.Duration) {
	const slice = 100 * time.Millisecond
	for passed := time.Duration(0); passed < d; passed += slice {
		h.clock.Advance(slice)
		h.settle()
	}
}

func (h *harness) close() {
	h.app.Close()
	h.wg.Wait()
}

func (h *harness) step() int {
	return h.app.Controller.CurrentStep()
}

func (h *harness) view() string {
	return h.model.View()
}

type recordingObserver struct {
	card.NoopObserver
	starts, gifts, ends int
	transitions         []card.Transition
}

func (r *recordingObserver) OnSessionStart(card.Session) { r.starts++ }
func (r *recordingObserver) OnAdvance(t card.Transition) { r.transitions = append(r.transitions, t) }
func (r *recordingObserver) OnGiftOpened()               { r.gifts++ }
func (r *recordingObserver) OnSessionEnd()               { r.ends++ }

func TestApp_FullSession(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	h := newHarness(t, card.OverflowHold, nil)

	require.Equal(t, 1, h.step())
	assert.Contains(t, h.view(), "Click to Begin")

	h.press()
	require.Equal(t, 2, h.step())
	countdown, ok := h.app.Current().(*CountdownView)
	require.True(t, ok)
	assert.Equal(t, 3, countdown.Value())
	assert.NotContains(t, h.view(), "continue", "countdown takes no input")

	h.press()
	assert.Equal(t, 2, h.step(), "keys do not skip the countdown")

	h.elapse(3 * time.Second)
	assert.Equal(t, 2, h.step())
	assert.Equal(t, 0, countdown.Value())

	h.elapse(1200 * time.Millisecond)
	require.Equal(t, 3, h.step())
	assert.Contains(t, h.view(), "Happy Birthday, Anjali!")

	h.press()
	require.Equal(t, 4, h.step())
	assert.Contains(t, h.view(), "Dear Anjali, Happy Birthday")

	h.press()
	require.Equal(t, 5, h.step())
	surprise, ok := h.app.Current().(*SurpriseView)
	require.True(t, ok)
	assert.False(t, surprise.Opened())
	assert.Contains(t, h.view(), "🎁")

	h.send(leftClick())
	h.settle()
	assert.True(t, surprise.Opened())
	assert.Contains(t, h.view(), "/photo.jpg")
	assert.Contains(t, h.view(), ClosingText)

	h.press()
	h.elapse(5 * time.Second)
	assert.Equal(t, 5, h.step(), "the final screen never advances on its own")

	h.close()
}

func TestApp_LeavingCountdownEarlyCancelsItsTimers(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	h := newHarness(t, card.OverflowHold, nil)
	h.press()
	countdown := h.app.Current().(*CountdownView)

	h.elapse(1500 * time.Millisecond)
	require.Equal(t, 2, countdown.Value())

	h.send(AdvanceMsg{Token: h.app.token})
	h.settle()
	require.Equal(t, 3, h.step())

	h.elapse(10 * time.Second)
	assert.Equal(t, 3, h.step(), "no stray advance after the countdown was torn down")
	assert.False(t, countdown.Fired())
	assert.Equal(t, 2, countdown.Value())

	h.close()
}

func TestApp_DropsStaleAdvance(t *testing.T) {
	h := newHarness(t, card.OverflowHold, nil)
	staleToken := h.app.token
	h.press()
	require.Equal(t, 2, h.step())

	h.send(AdvanceMsg{Token: staleToken})
	h.settle()
	assert.Equal(t, 2, h.step())
}

func TestApp_OverflowHoldKeepsFinalScreen(t *testing.T) {
	h := newHarness(t, card.OverflowHold, nil)
	for range 4 {
		h.send(AdvanceMsg{Token: h.app.token})
		h.settle()
	}
	surprise := h.app.Current().(*SurpriseView)
	h.press()
	require.True(t, surprise.Opened())

	h.send(AdvanceMsg{Token: h.app.token})
	h.settle()
	assert.Equal(t, 6, h.step())
	assert.Same(t, surprise, h.app.Current())
	assert.True(t, surprise.Opened(), "gift is never reset")
}

func TestApp_OverflowIntroRendersIntro(t *testing.T) {
	h := newHarness(t, card.OverflowIntro, nil)
	for range 5 {
		h.send(AdvanceMsg{Token: h.app.token})
		h.settle()
	}
	assert.Equal(t, 6, h.step())
	assert.IsType(t, &IntroView{}, h.app.Current())
	assert.Contains(t, h.view(), "Click to Begin")
}

func TestApp_ObserverSeesSession(t *testing.T) {
	obs := &recordingObserver{}
	h := newHarness(t, card.OverflowHold, obs)

	for range 4 {
		h.send(AdvanceMsg{Token: h.app.token})
		h.settle()
	}
	for range 3 {
		h.press()
	}
	h.close()
	h.close()

	assert.Equal(t, 1, obs.starts)
	assert.Len(t, obs.transitions, 4)
	assert.Equal(t, card.StepFinalSurprise, obs.transitions[3].To)
	assert.Equal(t, 1, obs.gifts)
	assert.Equal(t, 1, obs.ends)
}

func TestApp_QuitEndsSession(t *testing.T) {
	obs := &recordingObserver{}
	h := newHarness(t, card.OverflowHold, obs)

	h.send(keyMsg("q"))
	h.settle()
	assert.True(t, h.quit)
	assert.Equal(t, 1, obs.ends)

	h.press()
	assert.Equal(t, 1, h.step(), "no updates after quit")
}

func TestApp_ViewFitsWindow(t *testing.T) {
	h := newHarness(t, card.OverflowHold, nil)
	h.elapse(time.Second)

	lines := strings.Split(h.view(), "\n")
	assert.Len(t, lines, 40)
	assert.Contains(t, lines[len(lines)-1], "quit")
}
