// Package term provides the tcell frontend for the snake game.
// It drives Game.Run directly with a tcell screen as renderer and input.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Renderer draws board cells onto a tcell screen. Each cell takes two
// terminal columns so that it looks square.
type Renderer struct {
	screen tcell.Screen
	board  core.Board
}

// NewRenderer creates a renderer for board on screen.
func NewRenderer(screen tcell.Screen, board core.Board) *Renderer {
	return &Renderer{screen: screen, board: board}
}

func rgb(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Clear fills the board area with the background color.
func (r *Renderer) Clear(bg core.Color) {
	style := tcell.StyleDefault.Background(rgb(bg))
	for row := range r.board.Rows() {
		for col := range r.board.Cols() * 2 {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// DrawCell draws one cell as "[]" in the border color on the fill color.
func (r *Renderer) DrawCell(c core.Cell, fill, border core.Color) {
	if !r.board.Contains(c) {
		return
	}
	col, row := r.board.GridPos(c)
	style := tcell.StyleDefault.Background(rgb(fill)).Foreground(rgb(border))
	r.screen.SetContent(col*2, row, '[', nil, style)
	r.screen.SetContent(col*2+1, row, ']', nil, style)
}

// Present flushes the frame to the terminal.
func (r *Renderer) Present() error {
	r.screen.Show()
	return nil
}
