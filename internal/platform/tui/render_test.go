package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreenDimensions(t *testing.T) {
	board := core.DefaultBoard()
	s := core.NewScreen(board)
	s.Clear(core.ColorBackground)

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != board.Rows() {
		t.Fatalf("rendered %d lines, expected %d", len(lines), board.Rows())
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != board.Cols()*2 {
			t.Errorf("line %d width = %d, expected %d", i, w, board.Cols()*2)
		}
	}
	if strings.Contains(RenderScreen(s), filledGlyph) {
		t.Error("empty screen should not contain filled cells")
	}
}

func TestRenderScreenFilledCell(t *testing.T) {
	board := core.DefaultBoard()
	s := core.NewScreen(board)
	s.Clear(core.ColorBackground)
	s.DrawCell(board.CellAt(3, 2), core.ColorSnake, core.ColorBorder)

	lines := strings.Split(RenderScreen(s), "\n")
	if n := strings.Count(lines[2], filledGlyph); n != 1 {
		t.Errorf("row 2 has %d filled cells, expected 1", n)
	}
	for i, line := range lines {
		if i == 2 {
			continue
		}
		if strings.Contains(line, filledGlyph) {
			t.Errorf("row %d should be empty", i)
		}
	}
	if w := lipgloss.Width(lines[2]); w != board.Cols()*2 {
		t.Errorf("row 2 width = %d, expected %d", w, board.Cols()*2)
	}
}
