package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRelocateAvoidsOccupied(t *testing.T) {
	board := core.DefaultBoard()
	a := NewApple(board, rand.New(rand.NewSource(7)))

	occupied := []core.Cell{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 40, Y: 0},
		{X: 320, Y: 240}, {X: 340, Y: 240},
		{X: 620, Y: 460},
	}
	taken := make(map[core.Cell]bool)
	for _, c := range occupied {
		taken[c] = true
	}

	for i := 0; i < 1000; i++ {
		c, err := a.Relocate(occupied)
		if err != nil {
			t.Fatalf("Relocate() failed: %v", err)
		}
		if taken[c] {
			t.Fatalf("Relocate() returned occupied cell %v", c)
		}
		if !board.Contains(c) {
			t.Fatalf("Relocate() returned off-board cell %v", c)
		}
		if c.X%board.CellSize != 0 || c.Y%board.CellSize != 0 {
			t.Fatalf("Relocate() returned unaligned cell %v", c)
		}
		if a.Position() != c {
			t.Fatalf("Position() = %v, expected %v", a.Position(), c)
		}
	}
}

func TestRelocateFindsLastFreeCell(t *testing.T) {
	board := core.Board{Width: 60, Height: 40, CellSize: 20}
	a := NewApple(board, rand.New(rand.NewSource(1)))

	free := core.Cell{X: 40, Y: 20}
	var occupied []core.Cell
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			if c := board.CellAt(col, row); c != free {
				occupied = append(occupied, c)
			}
		}
	}

	c, err := a.Relocate(occupied)
	if err != nil {
		t.Fatalf("Relocate() failed: %v", err)
	}
	if c != free {
		t.Errorf("Relocate() = %v, expected %v", c, free)
	}
}

func TestRelocateBoardFull(t *testing.T) {
	board := core.Board{Width: 40, Height: 40, CellSize: 20}
	a := NewApple(board, rand.New(rand.NewSource(1)))

	occupied := []core.Cell{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 0, Y: 20}, {X: 20, Y: 20}}

	_, err := a.Relocate(occupied)
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("Relocate() error = %v, expected ErrBoardFull", err)
	}
}
