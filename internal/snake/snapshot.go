package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the observable game state for determinism testing and logging.
type Snapshot struct {
	Tick         uint64
	State        State
	Length       int
	TargetLength int
	Head         core.Cell
	Dir          core.Direction
	Apple        core.Cell
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		State:        g.state,
		Length:       g.snake.Len(),
		TargetLength: g.snake.TargetLength(),
		Head:         g.snake.Head(),
		Dir:          g.snake.Direction(),
		Apple:        g.apple.Position(),
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, State: %s\n", s.Tick, s.State))
	b.WriteString(fmt.Sprintf("Snake len: %d/%d, Direction: %s\n", s.Length, s.TargetLength, s.Dir))
	b.WriteString(fmt.Sprintf("Head: (%d, %d), Apple: (%d, %d)\n", s.Head.X, s.Head.Y, s.Apple.X, s.Apple.Y))
	return b.String()
}
