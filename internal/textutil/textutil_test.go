package textutil

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hello…"},
		{"🎁🎁🎁", 4, "🎁…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		got := Truncate(tt.in, tt.max)
		assert.Equal(t, tt.want, got, "Truncate(%q, %d)", tt.in, tt.max)
		assert.LessOrEqual(t, VisualWidth(got), max(tt.max, 0))
	}
}

func TestPadRightStyled(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hi")
	assert.Equal(t, 6, lipgloss.Width(PadRightStyled(styled, 6)))
	assert.Equal(t, "toolong", PadRightStyled("toolong", 3))
}
