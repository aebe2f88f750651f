package logging

import (
	"greetcard/internal/card"

	"go.uber.org/zap"
)

// Observer logs session progress.
type Observer struct {
	log *zap.Logger
}

var _ card.Observer = (*Observer)(nil)

// NewObserver returns an Observer; a nil logger logs nothing.
func NewObserver(log *zap.Logger) *Observer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Observer{log: log}
}

// OnSessionStart records the session input and scopes later lines to its id.
func (o *Observer) OnSessionStart(s card.Session) {
	o.log = o.log.With(zap.String("session", s.ID))
	o.log.Info("session started",
		zap.String("name", s.Name),
		zap.Int("message_len", len(s.Message)),
		zap.String("image", s.ImageRef),
	)
}

// OnAdvance logs a step transition.
func (o *Observer) OnAdvance(t card.Transition) {
	o.log.Info("advance",
		zap.Stringer("from", t.From),
		zap.Stringer("to", t.To),
		zap.Int("step", t.Counter),
	)
}

// OnGiftOpened logs the reveal.
func (o *Observer) OnGiftOpened() {
	o.log.Info("gift opened")
}

// OnSessionEnd logs the end of the session.
func (o *Observer) OnSessionEnd() {
	o.log.Info("session ended")
}
