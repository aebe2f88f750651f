package effects

import (
	"math/rand/v2"
	"strings"

	"greetcard/internal/textutil"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var confettiGlyphs = []rune{'*', '+', 'o', '~', '.', 'x'}

type particle struct {
	x, y   float64
	vx, vy float64
	glyph  rune
	color  int
}

// Confetti is a field of falling particles. A recycled field rains forever;
// otherwise it is a one-shot burst that empties as particles leave the
// bottom edge.
type Confetti struct {
	pieces    int
	recycle   bool
	width     int
	height    int
	particles []particle
	styles    []lipgloss.Style
	rng       *rand.Rand
	seeded    bool
}

// NewConfetti creates a field with the given piece count. Particles are
// placed on the first Resize.
func NewConfetti(pieces int, recycle bool, seed uint64) *Confetti {
	return &Confetti{
		pieces:  pieces,
		recycle: recycle,
		styles:  palette(8),
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// palette spreads n hues around the color wheel.
func palette(n int) []lipgloss.Style {
	out := make([]lipgloss.Style, n)
	for i := range n {
		c := colorful.Hsv(float64(i)*360/float64(n), 0.65, 1.0)
		out[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return out
}

// Resize sets the field dimensions, seeding particles the first time a
// non-zero size is known.
func (c *Confetti) Resize(width, height int) {
	if c == nil || width <= 0 || height <= 0 {
		return
	}
	c.width, c.height = width, height
	if c.seeded {
		return
	}
	c.seeded = true
	c.particles = make([]particle, c.pieces)
	for i := range c.particles {
		c.particles[i] = c.spawn(-c.rng.Float64() * float64(height))
	}
}

func (c *Confetti) spawn(y float64) particle {
	return particle{
		x:     c.rng.Float64() * float64(c.width),
		y:     y,
		vx:    (c.rng.Float64() - 0.5) * 0.3,
		vy:    0.15 + c.rng.Float64()*0.35,
		glyph: confettiGlyphs[c.rng.IntN(len(confettiGlyphs))],
		color: c.rng.IntN(len(c.styles)),
	}
}

// Step advances every particle by one frame.
func (c *Confetti) Step() {
	if c == nil || !c.seeded {
		return
	}
	alive := c.particles[:0]
	for _, p := range c.particles {
		p.x += p.vx
		p.y += p.vy
		if p.x < 0 {
			p.x += float64(c.width)
		} else if p.x >= float64(c.width) {
			p.x -= float64(c.width)
		}
		if p.y >= float64(c.height) {
			if !c.recycle {
				continue
			}
			p = c.spawn(-1)
		}
		alive = append(alive, p)
	}
	c.particles = alive
}

// Active reports whether the field still has anything to animate.
func (c *Confetti) Active() bool {
	if c == nil {
		return false
	}
	if c.recycle {
		return true
	}
	return !c.seeded || len(c.particles) > 0
}

// Len is the number of live particles.
func (c *Confetti) Len() int {
	if c == nil {
		return 0
	}
	return len(c.particles)
}

// Compose centers content in a width x height canvas and scatters the
// visible particles over the cells the content does not cover. If the
// content does not fit it is returned centered without confetti.
func (c *Confetti) Compose(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	blockW := 0
	for _, l := range lines {
		blockW = max(blockW, lipgloss.Width(l))
	}
	if c == nil || width <= 0 || height <= 0 || blockW > width || len(lines) > height {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	grid := make([][]int, height) // -1 empty, otherwise particle index
	for y := range grid {
		grid[y] = make([]int, width)
		for x := range grid[y] {
			grid[y][x] = -1
		}
	}
	for i, p := range c.particles {
		x, y := int(p.x), int(p.y)
		if y >= 0 && y < height && x >= 0 && x < width {
			grid[y][x] = i
		}
	}

	top := (height - len(lines)) / 2
	left := (width - blockW) / 2

	var b strings.Builder
	for y := range height {
		if y > 0 {
			b.WriteByte('\n')
		}
		if y >= top && y < top+len(lines) {
			line := lines[y-top]
			c.writeCells(&b, grid[y][:left])
			b.WriteString(textutil.PadRightStyled(line, blockW))
			c.writeCells(&b, grid[y][left+blockW:])
			continue
		}
		c.writeCells(&b, grid[y])
	}
	return b.String()
}

func (c *Confetti) writeCells(b *strings.Builder, cells []int) {
	for _, idx := range cells {
		if idx < 0 {
			b.WriteByte(' ')
			continue
		}
		p := c.particles[idx]
		b.WriteString(c.styles[p.color].Render(string(p.glyph)))
	}
}
