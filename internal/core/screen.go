package core

import (
	"strings"
)

// Renderer is the drawing collaborator. The game calls Clear once per tick,
// DrawCell for every visible object and Present when the frame is complete.
type Renderer interface {
	Clear(bg Color)
	DrawCell(c Cell, fill, border Color)
	Present() error
}

// Pixel is one board cell in a Screen buffer.
type Pixel struct {
	Fill   Color
	Border Color
	Filled bool // False for cells showing only the background
}

// Screen is a board-sized cell buffer implementing Renderer.
// It decouples game rendering from the terminal: the game draws cells
// while frontends decide how to display the buffer.
type Screen struct {
	board  Board
	bg     Color
	cells  [][]Pixel
	frames int
}

// NewScreen creates a screen buffer covering the given board.
func NewScreen(board Board) *Screen {
	s := &Screen{board: board}
	s.cells = make([][]Pixel, board.Rows())
	for y := range s.cells {
		s.cells[y] = make([]Pixel, board.Cols())
	}
	s.Clear(ColorBackground)
	return s
}

// Cols returns the screen width in cells.
func (s *Screen) Cols() int {
	return s.board.Cols()
}

// Rows returns the screen height in cells.
func (s *Screen) Rows() int {
	return s.board.Rows()
}

// Background returns the color of the last Clear.
func (s *Screen) Background() Color {
	return s.bg
}

// Frames returns how many frames have been presented.
func (s *Screen) Frames() int {
	return s.frames
}

// Clear fills the entire screen with the background color.
func (s *Screen) Clear(bg Color) {
	s.bg = bg
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Pixel{Fill: bg, Border: bg}
		}
	}
}

// DrawCell paints a single board cell.
// Cells off the board are silently ignored.
func (s *Screen) DrawCell(c Cell, fill, border Color) {
	if !s.board.Contains(c) {
		return
	}
	col, row := s.board.GridPos(c)
	s.cells[row][col] = Pixel{Fill: fill, Border: border, Filled: true}
}

// Present marks the frame as complete.
func (s *Screen) Present() error {
	s.frames++
	return nil
}

// Get returns the pixel at grid column col and row row.
// Returns a background pixel for out-of-bounds positions.
func (s *Screen) Get(col, row int) Pixel {
	if row < 0 || row >= len(s.cells) || col < 0 || col >= len(s.cells[row]) {
		return Pixel{Fill: s.bg, Border: s.bg}
	}
	return s.cells[row][col]
}

// At returns the pixel covering cell c.
func (s *Screen) At(c Cell) Pixel {
	col, row := s.board.GridPos(c)
	return s.Get(col, row)
}

// String converts the buffer to a plain-text picture: '#' for filled
// cells, '.' for background. Useful for debugging and screenshots.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.Cols()*s.Rows() + s.Rows())

	for y := range s.cells {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, p := range s.cells[y] {
			if p.Filled {
				sb.WriteRune('#')
			} else {
				sb.WriteRune('.')
			}
		}
	}
	return sb.String()
}
