package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Each board cell is two terminal columns wide so that cells look square.
const (
	emptyGlyph  = "  "
	filledGlyph = "[]"
)

// cellStyle returns the style for a screen pixel: filled cells show their
// border color on their fill color, empty cells only the background.
func cellStyle(p core.Pixel) lipgloss.Style {
	style := lipgloss.NewStyle().Background(lipgloss.Color(p.Fill.Hex()))
	if p.Filled {
		style = style.Foreground(lipgloss.Color(p.Border.Hex()))
	}
	return style
}

func glyph(p core.Pixel) string {
	if p.Filled {
		return filledGlyph
	}
	return emptyGlyph
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent identical cells to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Cols()*s.Rows()*4 + s.Rows())

	for y := range s.Rows() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Cols() {
			start := s.Get(x, y)
			n := 0
			for x < s.Cols() && s.Get(x, y) == start {
				n++
				x++
			}
			sb.WriteString(cellStyle(start).Render(strings.Repeat(glyph(start), n)))
		}
	}
	return sb.String()
}
