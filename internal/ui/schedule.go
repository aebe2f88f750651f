package ui

import (
	"context"
	"time"

	"greetcard/internal/clock"

	tea "github.com/charmbracelet/bubbletea"
)

// scheduler arms timers on behalf of one owner (a view, or the app for
// frame ticks). Its owner holds at most one pending timer at a time; arming
// a new one stops the previous. stop cancels everything for good.
type scheduler struct {
	ctx     context.Context
	cancel  context.CancelFunc
	clock   clock.Clock
	pending clock.Timer
	drop    context.CancelFunc
}

func newScheduler(parent context.Context, clk clock.Clock) *scheduler {
	ctx, cancel := context.WithCancel(parent)
	return &scheduler{ctx: ctx, cancel: cancel, clock: clk}
}

// after returns a command that yields msg once d has elapsed, or nil if the
// scheduler is stopped first. The timer starts now, not when the command
// runs.
func (s *scheduler) after(d time.Duration, msg tea.Msg) tea.Cmd {
	if s.ctx.Err() != nil {
		return nil
	}
	s.release()
	ctx, drop := context.WithCancel(s.ctx)
	t := s.clock.NewTimer(d)
	s.pending, s.drop = t, drop
	return func() tea.Msg {
		defer drop()
		defer t.Stop()
		select {
		case <-t.C():
			if ctx.Err() != nil {
				return nil
			}
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}

// stop cancels the pending timer and every command still waiting on one.
func (s *scheduler) stop() {
	s.release()
	s.cancel()
}

// release stops the pending timer and unblocks the command waiting on it.
func (s *scheduler) release() {
	if s.pending == nil {
		return
	}
	s.pending.Stop()
	s.drop()
	s.pending, s.drop = nil, nil
}

// stopped reports whether stop has been called or the parent is done.
func (s *scheduler) stopped() bool {
	return s.ctx.Err() != nil
}
