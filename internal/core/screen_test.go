package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(DefaultBoard())

	if s.Cols() != 32 {
		t.Errorf("Cols() = %d, expected 32", s.Cols())
	}
	if s.Rows() != 24 {
		t.Errorf("Rows() = %d, expected 24", s.Rows())
	}

	for y := 0; y < s.Rows(); y++ {
		for x := 0; x < s.Cols(); x++ {
			if s.Get(x, y).Filled {
				t.Errorf("New screen should be empty, got filled cell at (%d, %d)", x, y)
			}
		}
	}
}

func TestScreenDrawCell(t *testing.T) {
	s := NewScreen(DefaultBoard())

	s.DrawCell(Cell{40, 60}, ColorApple, ColorBorder)

	p := s.Get(2, 3)
	if !p.Filled {
		t.Fatal("DrawCell should fill the target cell")
	}
	if p.Fill != ColorApple || p.Border != ColorBorder {
		t.Errorf("Pixel = %+v, expected apple fill with border", p)
	}
	if s.At(Cell{40, 60}) != p {
		t.Error("At() should agree with Get()")
	}

	// Off-board draws are ignored
	s.DrawCell(Cell{-20, 0}, ColorSnake, ColorBorder)
	s.DrawCell(Cell{640, 0}, ColorSnake, ColorBorder)
	if strings.Count(s.String(), "#") != 1 {
		t.Errorf("Expected exactly one filled cell, got:\n%s", s.String())
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(DefaultBoard())
	s.DrawCell(Cell{0, 0}, ColorSnake, ColorBorder)

	s.Clear(Color{1, 2, 3})

	if s.Get(0, 0).Filled {
		t.Error("Clear should reset filled cells")
	}
	if s.Background() != (Color{1, 2, 3}) {
		t.Errorf("Background() = %v, expected (1, 2, 3)", s.Background())
	}
	if s.Get(99, 99).Fill != (Color{1, 2, 3}) {
		t.Error("Out-of-bounds Get should return the background")
	}
}

func TestScreenPresent(t *testing.T) {
	s := NewScreen(DefaultBoard())

	for i := 0; i < 3; i++ {
		if err := s.Present(); err != nil {
			t.Fatalf("Present() failed: %v", err)
		}
	}
	if s.Frames() != 3 {
		t.Errorf("Frames() = %d, expected 3", s.Frames())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(Board{Width: 60, Height: 40, CellSize: 20})
	s.DrawCell(Cell{20, 20}, ColorSnake, ColorBorder)

	expected := "...\n.#."
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestColorHex(t *testing.T) {
	if ColorBorder.Hex() != "#5dd8e4" {
		t.Errorf("Hex() = %s, expected #5dd8e4", ColorBorder.Hex())
	}
	if ColorApple.Hex() != "#ff0000" {
		t.Errorf("Hex() = %s, expected #ff0000", ColorApple.Hex())
	}
}
