package card

// Controller is the step state machine. The counter starts at 1 and only
// ever grows by one per Advance; it is not safe for concurrent use and is
// meant to be driven from the UI event loop.
type Controller struct {
	counter  int
	policy   OverflowPolicy
	observer Observer
}

// NewController returns a controller on StepIntro. A nil observer is
// replaced by NoopObserver.
func NewController(policy OverflowPolicy, observer Observer) *Controller {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Controller{
		counter:  int(FirstStep),
		policy:   policy,
		observer: observer,
	}
}

// CurrentStep returns the raw step counter.
func (c *Controller) CurrentStep() int {
	return c.counter
}

// Screen returns the screen for the current counter.
func (c *Controller) Screen() Step {
	return ScreenFor(c.counter, c.policy)
}

// Policy returns the overflow policy the controller was built with.
func (c *Controller) Policy() OverflowPolicy {
	return c.policy
}

// Advance increments the counter and returns the screen it now maps to.
// There is no saturation: calling Advance on the final screen still moves
// the counter, and the overflow policy decides what renders.
func (c *Controller) Advance() Step {
	from := c.Screen()
	c.counter++
	to := c.Screen()
	c.observer.OnAdvance(Transition{From: from, To: to, Counter: c.counter})
	return to
}
