package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is the player-controlled body. body[0] is the head.
type Snake struct {
	board        core.Board
	body         []core.Cell
	direction    core.Direction
	pending      core.Direction
	hasPending   bool // Single buffered direction slot
	targetLength int
}

// NewSnake creates a snake occupying body (head first) and heading in dir.
// The target length starts at len(body), at least 1.
func NewSnake(board core.Board, body []core.Cell, dir core.Direction) *Snake {
	s := &Snake{
		board:        board,
		body:         append([]core.Cell(nil), body...),
		direction:    dir,
		targetLength: max(1, len(body)),
	}
	return s
}

// NewStartSnake creates a one-segment snake at the board center heading right.
func NewStartSnake(board core.Board) *Snake {
	return NewSnake(board, []core.Cell{board.Center()}, core.DirRight)
}

// QueueDirection buffers d for the next move unless it would reverse the
// current direction. A later valid call overwrites an earlier one.
func (s *Snake) QueueDirection(d core.Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.pending = d
	s.hasPending = true
}

// Pending returns the buffered direction, if any.
func (s *Snake) Pending() (core.Direction, bool) {
	return s.pending, s.hasPending
}

// Move advances the snake one cell. The pending direction is applied first;
// the head wraps around board edges and the tail is dropped once the body
// is longer than the target length.
func (s *Snake) Move() {
	if s.hasPending {
		s.direction = s.pending
		s.hasPending = false
	}

	head := s.board.Wrap(s.Head().Add(s.direction, s.board.CellSize))

	s.body = append(s.body, core.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = head

	if len(s.body) > s.targetLength {
		s.body = s.body[:len(s.body)-1]
	}
}

// Grow raises the target length by one. The body catches up on the next move.
func (s *Snake) Grow() {
	s.targetLength++
}

// Collides reports whether the head overlaps any other segment.
func (s *Snake) Collides() bool {
	head := s.Head()
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Body returns a copy of the occupied cells, head first.
func (s *Snake) Body() []core.Cell {
	return append([]core.Cell(nil), s.body...)
}

// Len returns the current number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// TargetLength returns the length the body grows towards.
func (s *Snake) TargetLength() int {
	return s.targetLength
}

// Direction returns the current movement direction.
func (s *Snake) Direction() core.Direction {
	return s.direction
}
