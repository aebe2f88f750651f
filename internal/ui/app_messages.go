package ui

// AdvanceMsg asks the root model to move to the next step. Token is the
// token of the view that asked; stale tokens are dropped.
type AdvanceMsg struct {
	Token uint64
}

// GiftOpenedMsg is sent once by the final screen when the gift is opened.
type GiftOpenedMsg struct {
	Token uint64
}

// frameMsg steps the current view's effects.
type frameMsg struct{}

// countdownTickMsg decrements the countdown owning token.
type countdownTickMsg struct {
	token uint64
}

// countdownDoneMsg fires FinalDelay after the countdown reaches zero.
type countdownDoneMsg struct {
	token uint64
}
