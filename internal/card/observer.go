package card

// Transition describes one Advance call.
type Transition struct {
	From    Step
	To      Step
	Counter int // counter value after the advance
}

// Observer receives session progress. Implementations must not block; they
// run on the UI event loop.
type Observer interface {
	OnSessionStart(s Session)
	OnAdvance(t Transition)
	OnGiftOpened()
	OnSessionEnd()
}

// NoopObserver implements Observer with no-ops. Embed it to override only
// the callbacks you need.
type NoopObserver struct{}

func (NoopObserver) OnSessionStart(Session) {}
func (NoopObserver) OnAdvance(Transition)   {}
func (NoopObserver) OnGiftOpened()          {}
func (NoopObserver) OnSessionEnd()          {}

// MultiObserver fans out to several observers. A panicking observer does not
// stop the others.
type MultiObserver struct {
	observers []Observer
}

var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver drops nil entries.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

// OnSessionStart forwards to all observers.
func (m *MultiObserver) OnSessionStart(s Session) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnSessionStart(s) })
	}
}

// OnAdvance forwards to all observers.
func (m *MultiObserver) OnAdvance(t Transition) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnAdvance(t) })
	}
}

// OnGiftOpened forwards to all observers.
func (m *MultiObserver) OnGiftOpened() {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnGiftOpened() })
	}
}

// OnSessionEnd forwards to all observers.
func (m *MultiObserver) OnSessionEnd() {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnSessionEnd() })
	}
}
