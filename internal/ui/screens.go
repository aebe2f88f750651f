package ui

import (
	"greetcard/internal/card"
	"greetcard/internal/effects"
)

// screenEnv is everything a screen constructor needs.
type screenEnv struct {
	token     uint64
	sched     *scheduler
	keys      KeyMap
	session   card.Session
	timing    card.Timing
	assetsDir string
	width     int
	height    int
}

func (e screenEnv) stage(entrance *effects.Entrance, confetti *effects.Confetti) stage {
	return stage{
		token:    e.token,
		sched:    e.sched,
		keys:     e.keys,
		width:    e.width,
		height:   e.height,
		entrance: entrance,
		confetti: confetti,
	}
}

// newScreen is the total mapping from screen to view constructor.
func newScreen(s card.Step, env screenEnv) View {
	switch s {
	case card.StepCountdown:
		return NewCountdownView(env)
	case card.StepCake:
		return NewCakeView(env)
	case card.StepMessage:
		return NewMessageView(env)
	case card.StepFinalSurprise:
		return NewSurpriseView(env)
	default:
		return NewIntroView(env)
	}
}
