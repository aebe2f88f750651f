package card

import "time"

// Timing holds the countdown schedule.
type Timing struct {
	CountdownFrom int           // first value shown
	Tick          time.Duration // delay between decrements
	FinalDelay    time.Duration // delay between reaching zero and advancing
}

// DefaultTiming counts 3, 2, 1 a second apart and advances 1.2s after zero.
func DefaultTiming() Timing {
	return Timing{
		CountdownFrom: 3,
		Tick:          time.Second,
		FinalDelay:    1200 * time.Millisecond,
	}
}

// Total is the time from entering the countdown to its advance.
func (t Timing) Total() time.Duration {
	return time.Duration(t.CountdownFrom)*t.Tick + t.FinalDelay
}
