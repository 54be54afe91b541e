package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/sound"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func init() {
	registry.Register(config.FrontendTcell, func() registry.Frontend {
		return Frontend{newScreen: tcell.NewScreen}
	})
}

// Frontend plays the game on a raw tcell screen.
type Frontend struct {
	newScreen func() (tcell.Screen, error)
}

// ID returns the frontend identifier.
func (Frontend) ID() string {
	return config.FrontendTcell
}

// Title returns the display name.
func (Frontend) Title() string {
	return "tcell"
}

// Play initializes the terminal and runs the game loop until it ends.
func (f Frontend) Play(ctx context.Context, game *snake.Game, opts registry.Options) (snake.Snapshot, error) {
	logger := opts.Log()

	screen, err := f.newScreen()
	if err != nil {
		return game.Snapshot(), fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return game.Snapshot(), fmt.Errorf("term: cannot init screen: %w", err)
	}
	screen.HideCursor()

	in := NewInput(screen)
	defer func() {
		in.Close()
		screen.Fini()
	}()

	player := sound.Setup(opts.Sound, logger)
	defer player.Close()
	game.OnEat(player.Eat)

	logger.Info("game started", "frontend", config.FrontendTcell, "seed", opts.Runtime.Seed)

	snap, err := game.Run(ctx, in, NewRenderer(screen, game.Board()), core.NewWallClock())
	if err != nil {
		logger.Error("game aborted", "error", err)
		return snap, err
	}

	logger.Info("game ended", "outcome", snap.State, "ticks", snap.Tick, "length", snap.Length)
	logger.Debug("final state", "state", game.DebugState())
	return snap, nil
}
