package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/sound"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func init() {
	registry.Register(config.FrontendTea, func() registry.Frontend {
		return Frontend{}
	})
}

// Frontend plays the game through Bubble Tea.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string {
	return config.FrontendTea
}

// Title returns the display name.
func (Frontend) Title() string {
	return "Bubble Tea"
}

// Play runs the game in the alternate screen until it ends.
func (Frontend) Play(ctx context.Context, game *snake.Game, opts registry.Options) (snake.Snapshot, error) {
	logger := opts.Log()
	player := sound.Setup(opts.Sound, logger)
	defer player.Close()
	game.OnEat(player.Eat)

	logger.Info("game started", "frontend", config.FrontendTea, "seed", opts.Runtime.Seed)

	p := tea.NewProgram(
		NewModel(game, nil),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return game.Snapshot(), fmt.Errorf("tui: %w", err)
	}

	// Context cancellation kills the program mid-game; record it as a quit.
	if !game.State().Terminal() {
		game.Step([]core.Event{core.Quit()})
	}

	snap := game.Snapshot()
	logger.Info("game ended", "outcome", snap.State, "ticks", snap.Tick, "length", snap.Length)
	logger.Debug("final state", "state", game.DebugState())
	return snap, nil
}
