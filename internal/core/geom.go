// Package core provides fundamental types for the snake game.
// It contains no external dependencies (especially no Bubble Tea or tcell) to keep
// game logic pure and testable.
package core

// Board dimensions in pixel units, matching the classic 640x480 window.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
	CellSize     = 20
)

// Cell is a grid-aligned board position. Coordinates are multiples of the cell size.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d scaled to the given cell size.
func (c Cell) Add(d Direction, size int) Cell {
	dx, dy := d.Vector()
	return Cell{X: c.X + dx*size, Y: c.Y + dy*size}
}

// Board describes the toroidal playing field.
type Board struct {
	Width    int // Width in pixel units
	Height   int // Height in pixel units
	CellSize int // Side of one cell in pixel units
}

// DefaultBoard returns the standard 640x480 board with 20-unit cells.
func DefaultBoard() Board {
	return Board{
		Width:    ScreenWidth,
		Height:   ScreenHeight,
		CellSize: CellSize,
	}
}

// Cols returns the number of cells per row.
func (b Board) Cols() int {
	return b.Width / b.CellSize
}

// Rows returns the number of cells per column.
func (b Board) Rows() int {
	return b.Height / b.CellSize
}

// TotalCells returns the number of cells on the board.
func (b Board) TotalCells() int {
	return b.Cols() * b.Rows()
}

// Center returns the cell at the middle of the board.
func (b Board) Center() Cell {
	return Cell{X: b.Width / 2, Y: b.Height / 2}
}

// Wrap maps a cell back onto the board so that leaving one edge
// re-enters on the opposite edge.
func (b Board) Wrap(c Cell) Cell {
	return Cell{X: mod(c.X, b.Width), Y: mod(c.Y, b.Height)}
}

// Contains reports whether c lies on the board.
func (b Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// CellAt returns the cell for grid column col and row row.
func (b Board) CellAt(col, row int) Cell {
	return Cell{X: col * b.CellSize, Y: row * b.CellSize}
}

// GridPos converts a cell to its column and row.
func (b Board) GridPos(c Cell) (col, row int) {
	return c.X / b.CellSize, c.Y / b.CellSize
}

// TermSize returns the terminal columns and rows needed to show the board.
// Each cell is drawn two columns wide so that it looks square.
func (b Board) TermSize() (cols, rows int) {
	return b.Cols() * 2, b.Rows()
}

// FitsTerminal reports whether a terminal of the given size can show the board.
func (b Board) FitsTerminal(width, height int) bool {
	cols, rows := b.TermSize()
	return width >= cols && height >= rows
}

// mod is a modulo that never returns a negative result.
func mod(a, n int) int {
	return ((a % n) + n) % n
}

// Direction is one of the four unit movement vectors.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit step for the direction, with y growing downwards.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
