// Package snake implements the single-player snake game: the snake, the apple
// and the fixed-rate loop that ties them to the render, input and clock
// collaborators. The package is pure game logic; frontends live in platform/.
package snake

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the loop state.
type State int

const (
	StateRunning State = iota
	StateGameOver
	StateQuit
	StateBoardFull
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	case StateBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Terminal reports whether the loop has ended.
func (s State) Terminal() bool {
	return s != StateRunning
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	State State
	Ate   bool // The head landed on the apple this tick
}

// Game owns one snake and one apple for the lifetime of a single game.
type Game struct {
	board    core.Board
	rng      *rand.Rand
	tickRate int
	tick     uint64
	state    State

	snake *Snake
	apple *Apple

	onEat func()
}

// New creates a game with the snake at the board center heading right and
// the apple already placed on a free cell.
func New(cfg core.RuntimeConfig) *Game {
	board := core.DefaultBoard()
	g := &Game{
		board:    board,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		tickRate: cfg.TickRate,
		snake:    NewStartSnake(board),
	}
	if g.tickRate <= 0 {
		g.tickRate = core.TickRate
	}
	g.apple = NewApple(board, g.rng)
	//nolint:errcheck // A one-cell snake cannot fill the board
	g.apple.Relocate(g.snake.Body())
	return g
}

// OnEat registers a callback invoked every time the snake eats the apple.
func (g *Game) OnEat(fn func()) {
	g.onEat = fn
}

// Board returns the board the game is played on.
func (g *Game) Board() core.Board {
	return g.board
}

// Snake returns the player's snake.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Apple returns the apple.
func (g *Game) Apple() *Apple {
	return g.apple
}

// State returns the current loop state.
func (g *Game) State() State {
	return g.state
}

// TickRate returns the simulation rate in ticks per second.
func (g *Game) TickRate() int {
	return g.tickRate
}

// Step advances the game by one tick using the events polled for it.
// Once the game has reached a terminal state Step does nothing.
func (g *Game) Step(events []core.Event) StepResult {
	if g.state.Terminal() {
		return StepResult{State: g.state}
	}
	g.tick++

	for _, ev := range events {
		switch ev.Type {
		case core.EventQuit:
			g.state = StateQuit
			return StepResult{State: g.state}
		case core.EventKeyDown:
			if dir, ok := ev.Key.Direction(); ok {
				g.snake.QueueDirection(dir)
			}
		}
	}

	g.snake.Move()

	if g.snake.Collides() {
		g.state = StateGameOver
		return StepResult{State: g.state}
	}

	if g.snake.Head() != g.apple.Position() {
		return StepResult{State: g.state}
	}

	g.snake.Grow()
	if _, err := g.apple.Relocate(g.snake.Body()); errors.Is(err, ErrBoardFull) {
		g.state = StateBoardFull
	}
	if g.onEat != nil {
		g.onEat()
	}
	return StepResult{State: g.state, Ate: true}
}

// Render draws the board background, the apple and the snake. Non-head
// segments are drawn first and the head last, all in the same style.
func (g *Game) Render(dst core.Renderer) {
	dst.Clear(core.ColorBackground)
	dst.DrawCell(g.apple.Position(), core.ColorApple, core.ColorBorder)

	body := g.snake.body
	for _, seg := range body[1:] {
		dst.DrawCell(seg, core.ColorSnake, core.ColorBorder)
	}
	dst.DrawCell(body[0], core.ColorSnake, core.ColorBorder)
}

// Run drives the game loop until the game ends, the input asks to quit or
// ctx is cancelled. Each iteration polls input, steps, renders, presents and
// then waits on the clock. A cancelled context ends the game as a quit.
func (g *Game) Run(ctx context.Context, in core.Input, dst core.Renderer, clock core.Clock) (Snapshot, error) {
	for {
		if ctx.Err() != nil {
			g.state = StateQuit
			return g.Snapshot(), nil
		}

		result := g.Step(in.PollEvents())
		if result.State.Terminal() {
			return g.Snapshot(), nil
		}

		g.Render(dst)
		if err := dst.Present(); err != nil {
			return g.Snapshot(), fmt.Errorf("snake: present frame: %w", err)
		}

		clock.Tick(g.tickRate)
	}
}
