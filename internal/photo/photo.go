// Package photo turns the card's image reference into something a terminal
// can show: a half-block thumbnail when the file decodes, a labelled
// placeholder otherwise.
package photo

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"greetcard/internal/textutil"

	"github.com/charmbracelet/lipgloss"
)

// Picture is a rendered image reference.
type Picture struct {
	Ref      string
	Path     string // resolved file, empty when not found
	Rendered string
	Loaded   bool // false means Rendered is a placeholder
	Err      error
}

// Resolve finds a local file for ref. References are tried as given and,
// when rooted, relative to baseDir (a site-style "/photo.jpg" that lives in
// an assets folder). Remote URLs never resolve.
func Resolve(ref, baseDir string) (string, bool) {
	if ref == "" || isRemote(ref) {
		return "", false
	}
	candidates := []string{ref}
	if baseDir != "" {
		candidates = append(candidates, filepath.Join(baseDir, strings.TrimPrefix(ref, "/")))
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, true
		}
	}
	return "", false
}

func isRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Load resolves and renders ref within maxW columns and maxH rows. It never
// fails: problems are recorded in Err and a placeholder is rendered.
func Load(ref, baseDir string, maxW, maxH int) Picture {
	pic := Picture{Ref: ref}
	path, ok := Resolve(ref, baseDir)
	if !ok {
		pic.Rendered = Placeholder(ref, maxW)
		return pic
	}
	pic.Path = path

	f, err := os.Open(path)
	if err != nil {
		pic.Err = err
		pic.Rendered = Placeholder(ref, maxW)
		return pic
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		pic.Err = fmt.Errorf("decode %s: %w", path, err)
		pic.Rendered = Placeholder(ref, maxW)
		return pic
	}
	pic.Rendered = Thumbnail(img, maxW, maxH)
	pic.Loaded = true
	return pic
}

var placeholderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("241")).
	Foreground(lipgloss.Color("241")).
	Italic(true).
	Padding(1, 2)

// Placeholder is the broken-image box shown for an unavailable reference.
func Placeholder(ref string, maxW int) string {
	label := "🖼  " + ref
	if ref == "" {
		label = "🖼  (no image)"
	}
	if maxW > 6 {
		label = textutil.Truncate(label, maxW-6) // border and padding
	}
	return placeholderStyle.Render(label)
}

// Thumbnail renders img with upper half blocks: each cell shows two pixels,
// the top one as foreground and the bottom one as background. The image is
// scaled with nearest-neighbour sampling to fit maxW x maxH cells.
func Thumbnail(img image.Image, maxW, maxH int) string {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW == 0 || srcH == 0 || maxW <= 0 || maxH <= 0 {
		return ""
	}

	w := maxW
	h := srcH * w / srcW // pixel rows
	if h > maxH*2 {
		h = maxH * 2
		w = max(1, srcW*h/srcH)
	}
	h = max(2, h+h%2)

	at := func(x, y int) lipgloss.Color {
		sx := b.Min.X + x*srcW/w
		sy := b.Min.Y + min(y*srcH/h, srcH-1)
		r, g, bl, _ := img.At(sx, sy).RGBA()
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, bl>>8))
	}

	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range w {
			sb.WriteString(lipgloss.NewStyle().
				Foreground(at(x, y)).
				Background(at(x, y+1)).
				Render("▀"))
		}
	}
	return sb.String()
}
