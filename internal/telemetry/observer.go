package telemetry

import (
	"context"

	"greetcard/internal/card"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "greetcard/card"

// Observer turns session callbacks into spans.
type Observer struct {
	tracer  oteltrace.Tracer
	ctx     context.Context
	session oteltrace.Span
	screen  oteltrace.Span
}

var _ card.Observer = (*Observer)(nil)

// NewObserver returns an Observer tracing through tp. A nil provider
// returns nil; a nil *Observer ignores every callback.
func NewObserver(tp oteltrace.TracerProvider) *Observer {
	if tp == nil {
		return nil
	}
	return &Observer{tracer: tp.Tracer(tracerName)}
}

// OnSessionStart opens the session span and the first screen span.
func (o *Observer) OnSessionStart(s card.Session) {
	if o == nil {
		return
	}
	o.ctx, o.session = o.tracer.Start(context.Background(), "greetcard.session",
		oteltrace.WithAttributes(
			attribute.String("greetcard.session.id", s.ID),
			attribute.String("greetcard.recipient", s.Name),
			attribute.String("greetcard.image", s.ImageRef),
		))
	o.startScreen(card.FirstStep, int(card.FirstStep))
}

// OnAdvance closes the current screen span and opens the next one.
func (o *Observer) OnAdvance(t card.Transition) {
	if o == nil || o.session == nil {
		return
	}
	if o.screen != nil {
		o.screen.End()
	}
	o.startScreen(t.To, t.Counter)
}

// OnGiftOpened records an event on the current screen span.
func (o *Observer) OnGiftOpened() {
	if o != nil && o.screen != nil {
		o.screen.AddEvent("gift.opened")
	}
}

// OnSessionEnd closes every open span.
func (o *Observer) OnSessionEnd() {
	if o == nil {
		return
	}
	if o.screen != nil {
		o.screen.End()
		o.screen = nil
	}
	if o.session != nil {
		o.session.End()
		o.session = nil
	}
}

func (o *Observer) startScreen(s card.Step, counter int) {
	_, o.screen = o.tracer.Start(o.ctx, "greetcard.screen",
		oteltrace.WithAttributes(
			attribute.String("greetcard.screen", s.String()),
			attribute.Int("greetcard.step", counter),
		))
}
