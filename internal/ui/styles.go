package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the card
const (
	ColorAccent    = "220" // Yellow - buttons, big digits
	ColorHighlight = "205" // Magenta - titles, borders
	ColorPurple    = "93"  // Purple - message card title
	ColorMuted     = "241" // Gray - hints
	ColorText      = "252" // Light gray - body text
	ColorDark      = "54"  // Dark purple - button label
	ColorGift      = "203" // Soft red - gift box
)

// Styles contains shared style definitions used across screens.
var Styles = struct {
	Title    lipgloss.Style // Screen headline
	Headline lipgloss.Style // Large greeting under the cake
	Button   lipgloss.Style // Call-to-action button
	Digit    lipgloss.Style // Countdown digits
	Card     lipgloss.Style // Message card box
	CardHead lipgloss.Style // Message card title
	Body     lipgloss.Style // Message body text
	Gift     lipgloss.Style // Unopened gift box
	Closing  lipgloss.Style // Closing line under the photo
	Cake     lipgloss.Style // Cake art
	Flame    lipgloss.Style // Candle flames
	Hint     lipgloss.Style // Help/hint text
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Headline: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDark)).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 3).
		MarginTop(1),
	Digit: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 3),
	CardHead: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPurple)).
		MarginBottom(1),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Gift: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorGift)).
		Padding(1, 4),
	Closing: lipgloss.NewStyle().
		Bold(true).
		MarginTop(1),
	Cake: lipgloss.NewStyle().
		Foreground(lipgloss.Color("217")),
	Flame: lipgloss.NewStyle().
		Foreground(lipgloss.Color("208")).
		Bold(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
