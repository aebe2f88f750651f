package effects

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// FPS is the frame rate effects are tuned for.
const FPS = 30

// Entrance animates a scalar offset (rows or columns) from a starting value
// to zero with a damped spring.
type Entrance struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// SpringConfig mirrors the stiffness/damping knobs of a spring transition.
type SpringConfig struct {
	AngularFrequency float64
	Damping          float64
}

var (
	// Gentle settles without overshoot, for fades and slides.
	Gentle = SpringConfig{AngularFrequency: 6.0, Damping: 1.0}
	// Bouncy overshoots a little, for pop-in reveals.
	Bouncy = SpringConfig{AngularFrequency: 9.0, Damping: 0.45}
)

// NewEntrance starts an entrance at offset from.
func NewEntrance(from float64, cfg SpringConfig) *Entrance {
	return &Entrance{
		spring: harmonica.NewSpring(harmonica.FPS(FPS), cfg.AngularFrequency, cfg.Damping),
		pos:    from,
	}
}

// Step advances the spring by one frame.
func (e *Entrance) Step() {
	if e == nil || e.Settled() {
		return
	}
	e.pos, e.vel = e.spring.Update(e.pos, e.vel, 0)
	if e.Settled() {
		e.pos, e.vel = 0, 0
	}
}

// Offset is the current offset rounded to whole cells.
func (e *Entrance) Offset() int {
	if e == nil {
		return 0
	}
	return int(math.Round(e.pos))
}

// Settled reports whether the spring has come to rest.
func (e *Entrance) Settled() bool {
	if e == nil {
		return true
	}
	return math.Abs(e.pos) < 0.05 && math.Abs(e.vel) < 0.05
}
