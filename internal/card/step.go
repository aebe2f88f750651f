package card

import (
	"fmt"
	"strings"
)

// Step identifies one of the five screens of a session.
type Step int

const (
	StepIntro Step = iota + 1
	StepCountdown
	StepCake
	StepMessage
	StepFinalSurprise
)

// FirstStep and LastStep bound the known screens.
const (
	FirstStep = StepIntro
	LastStep  = StepFinalSurprise
)

// Steps returns the screens in presentation order.
func Steps() []Step {
	return []Step{StepIntro, StepCountdown, StepCake, StepMessage, StepFinalSurprise}
}

// Valid reports whether s is one of the five known screens.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

func (s Step) String() string {
	switch s {
	case StepIntro:
		return "Intro"
	case StepCountdown:
		return "Countdown"
	case StepCake:
		return "Cake"
	case StepMessage:
		return "Message"
	case StepFinalSurprise:
		return "FinalSurprise"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// OverflowPolicy decides which screen a counter beyond the known range
// renders.
type OverflowPolicy int

const (
	// OverflowHold keeps showing the final screen once the counter passes it.
	OverflowHold OverflowPolicy = iota
	// OverflowIntro renders Intro for any counter outside the known range.
	OverflowIntro
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowHold:
		return "hold"
	case OverflowIntro:
		return "intro"
	default:
		return "unknown"
	}
}

// ParseOverflowPolicy parses "hold" or "intro" (case-insensitive). The empty
// string selects OverflowHold.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hold":
		return OverflowHold, nil
	case "intro":
		return OverflowIntro, nil
	default:
		return OverflowHold, fmt.Errorf("unknown overflow policy %q (want hold or intro)", s)
	}
}

// ScreenFor maps a raw step counter to the screen it renders. The mapping is
// total: every counter value yields a known screen.
func ScreenFor(counter int, policy OverflowPolicy) Step {
	s := Step(counter)
	if s.Valid() {
		return s
	}
	if policy == OverflowHold && counter > int(LastStep) {
		return LastStep
	}
	return StepIntro
}
