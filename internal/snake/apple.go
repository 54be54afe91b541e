package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned by Relocate when no free cell is left for the apple.
var ErrBoardFull = errors.New("snake: no free cell left for the apple")

// Apple is the single piece of food on the board.
type Apple struct {
	position core.Cell
	board    core.Board
	rng      *rand.Rand
}

// NewApple creates an apple at the board origin. Callers relocate it
// before the first tick.
func NewApple(board core.Board, rng *rand.Rand) *Apple {
	return &Apple{
		board: board,
		rng:   rng,
	}
}

// Position returns the apple's cell.
func (a *Apple) Position() core.Cell {
	return a.position
}

// Relocate moves the apple to a uniformly random cell that is not in occupied.
// Cells are rejection-sampled from the whole board until a free one comes up.
// When occupied covers the entire board it returns ErrBoardFull and the
// apple stays where it is.
func (a *Apple) Relocate(occupied []core.Cell) (core.Cell, error) {
	taken := make(map[core.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		if a.board.Contains(c) {
			taken[c] = struct{}{}
		}
	}
	if len(taken) >= a.board.TotalCells() {
		return a.position, ErrBoardFull
	}

	for {
		c := a.board.CellAt(a.rng.Intn(a.board.Cols()), a.rng.Intn(a.board.Rows()))
		if _, ok := taken[c]; !ok {
			a.position = c
			return c, nil
		}
	}
}
